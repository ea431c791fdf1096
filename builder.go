package dlx

import "iter"

// root is always arena index 1; the sentinel lives at index 0.
const root Index = 1

// Solver owns an exact-cover matrix built once from a column count and a
// row stream, and the recursive search state used to enumerate solutions.
// A Solver is reusable across successive Solve calls (see Solve) and is
// not safe for concurrent use.
type Solver struct {
	a arena

	// solRows is the stack of chosen data-cell indices for the current
	// search; cleared at the top of every Solve call.
	solRows []Index
	// finished is set once a sink has asked the search to stop.
	finished bool

	// Debug, when true, routes cover/uncover/column-choice tracing
	// through log.Printf. Off by default; costs nothing when false.
	Debug bool
}

// Rows adapts a materialized slice of rows into the lazy iter.Seq[[]int]
// New expects. Every row is a set of distinct column indices in [0, ncols).
func Rows(rows [][]int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, row := range rows {
			if !yield(row) {
				return
			}
		}
	}
}

// New builds a Solver for an exact-cover matrix with ncols columns and the
// given rows. ncols must be non-negative, every column index in every row
// must be in [0, ncols), and rows must not repeat a column index (doing so
// would double-link an entry into its own column ring, corrupting the
// ring-consistency invariant) — New panics if it detects either violation.
// The row stream is consumed exactly once, in order.
func New(ncols int, rows iter.Seq[[]int]) *Solver {
	s := &Solver{a: *newArena()}
	s.addHeaders(ncols)

	// bottoms[c] tracks the arena index of column c's current bottom
	// entry, so each new row cell can be spliced in below it.
	bottoms := make([]Index, ncols)
	for c := range bottoms {
		bottoms[c] = c + 2
	}

	for row := range rows {
		s.addRow(row, bottoms)
	}

	// Close the vertical rings: each header's up points at its bottom,
	// and that bottom's down points back at the header.
	idx := s.a.es[root].right
	for idx != root {
		s.a.es[idx].up = bottoms[idx-2]
		s.a.es[bottoms[idx-2]].down = idx
		idx = s.a.es[idx].right
	}

	return s
}

func (s *Solver) addHeaders(ncols int) {
	// The root, at index 1.
	s.a.append(entry{right: root + 1})
	for i := 1; i <= ncols; i++ {
		s.a.append(entry{left: i, right: i + 2, x1: i - 1})
	}
	if ncols == 0 {
		s.a.es[root].right = root
		s.a.es[root].left = root
		return
	}
	s.a.es[root].left = ncols + 1
	s.a.es[ncols+1].right = root
}

func (s *Solver) addRow(row []int, bottoms []Index) {
	if len(row) == 0 {
		return
	}
	rowStart := s.a.len()
	seen := make(map[int]struct{}, len(row))
	for _, col := range row {
		if _, dup := seen[col]; dup {
			panic("dlx: duplicate column index within one row")
		}
		seen[col] = struct{}{}
		if col < 0 || col >= len(bottoms) {
			panic("dlx: column index out of range")
		}

		idx := s.a.len()
		s.a.append(entry{
			x1:    col + 2,
			left:  idx - 1,
			right: idx + 1,
			up:    bottoms[col],
		})
		s.a.es[bottoms[col]].down = idx
		bottoms[col] = idx
		s.a.es[col+2].x2++
	}
	rowEnd := s.a.len() - 1
	s.a.es[rowEnd].right = rowStart
	s.a.es[rowStart].left = rowEnd
	s.a.es[rowStart].x2 = 1
}
