package dlx

import (
	"iter"
	"slices"
)

// Solution is a lazy, forward-only view over one complete exact cover: the
// clue rows the caller supplied to Solve, in the order given, followed by
// the rows chosen during search, in the order they were pushed onto the
// search stack. It borrows the Solver's arena and is valid only for the
// duration of the Solutions.Push call that produced it — do not retain a
// Solution (or anything obtained from it that still references the
// arena) past that call.
type Solution struct {
	solver *Solver
	clues  [][]int
	rows   []Index // chosen entry indices, borrowed from solver.solRows
}

// All returns an iterator over the solution's rows: each row is a set of
// column indices in the caller's external 0..ncols-1 numbering, in the
// same left-to-right order the columns were originally supplied in.
func (sol Solution) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, row := range sol.clues {
			if !yield(row) {
				return
			}
		}
		for _, rowIdx := range sol.rows {
			if !yield(sol.getRow(rowIdx)) {
				return
			}
		}
	}
}

// Collect materializes an iter.Seq[[]int] into a [][]int snapshot. It is a
// thin wrapper over slices.Collect for callers that want a complete copy
// of a Solution rather than streaming it inside Push.
func Collect(rows iter.Seq[[]int]) [][]int {
	return slices.Collect(rows)
}

// getRow reconstructs the full row containing the data cell at idx, in
// the row's original horizontal ring order, starting from its designated
// start-of-row cell.
func (sol Solution) getRow(idx Index) []int {
	es := sol.solver.a.es
	for es[idx].x2 == 0 {
		idx = es[idx].left
	}
	row := []int{es[es[idx].x1].x1}
	for col := es[idx].right; col != idx; col = es[col].right {
		row = append(row, es[es[col].x1].x1)
	}
	return row
}
