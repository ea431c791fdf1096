package dlx

import "log"

// Solve drives the recursive backtracking search. clues is a pre-selected
// partial assignment: each clue row's columns are covered before search
// begins, and uncovered again (in reverse) before Solve returns, so the
// Solver is left exactly as it was found and may be reused (see package
// doc). sink.Push is invoked once per complete exact cover, in the
// deterministic order fixed by header-ring traversal order and row
// insertion order, until it returns false.
//
// If two clue rows claim the same column, the second cover on that header
// is skipped rather than applied a second time, and the search is not run:
// this keeps per-column counts consistent and still restores the arena
// exactly, and the contradictory clue set yields zero solutions. The
// headers actually covered are recorded on a stack as
// they're covered, so unwinding can undo them in exact reverse
// chronological order regardless of where in the clue/column structure
// they occurred — unwinding in clue/column structural order instead would
// uncover a shared column before the covers it structurally precedes are
// undone, corrupting the arena's header counts.
func (s *Solver) Solve(clues [][]int, sink Solutions) {
	s.finished = false
	s.solRows = s.solRows[:0]

	covered := make([]bool, len(s.a.es)) // indexed by header arena index
	var stack []Index                    // headers actually covered, in cover order
	conflict := false
	for _, row := range clues {
		for _, col := range row {
			hdr := col + 2
			if covered[hdr] {
				conflict = true
				continue
			}
			s.cover(hdr)
			covered[hdr] = true
			stack = append(stack, hdr)
		}
	}

	if !conflict {
		s.search(clues, sink)
	}

	for i := len(stack) - 1; i >= 0; i-- {
		s.uncover(stack[i])
	}
}

func (s *Solver) search(clues [][]int, sink Solutions) {
	es := s.a.es
	if es[root].right == root {
		// Every column is covered: the current clue rows plus chosen
		// rows form a complete exact cover.
		sol := Solution{solver: s, clues: clues, rows: s.solRows}
		s.finished = !sink.Push(sol)
		return
	}

	hdr := s.chooseColumn()
	s.cover(hdr)

	for rowIdx := s.a.es[hdr].down; rowIdx != hdr; rowIdx = s.a.es[rowIdx].down {
		s.solRows = append(s.solRows, rowIdx)

		for col := s.a.es[rowIdx].right; col != rowIdx; col = s.a.es[col].right {
			s.cover(s.a.es[col].x1)
		}

		s.search(clues, sink)

		for col := s.a.es[rowIdx].left; col != rowIdx; col = s.a.es[col].left {
			s.uncover(s.a.es[col].x1)
		}

		s.solRows = s.solRows[:len(s.solRows)-1]

		if s.finished {
			s.uncover(hdr)
			return
		}
	}

	s.uncover(hdr)
}

// chooseColumn implements Knuth's S-heuristic: the live column with the
// fewest remaining rows, breaking ties by first encounter while scanning
// the header ring left to right from the root.
func (s *Solver) chooseColumn() Index {
	es := s.a.es
	minSize := -1
	minHdr := Index(0)
	for hdr := es[root].right; hdr != root; hdr = es[hdr].right {
		if minHdr == 0 || es[hdr].x2 < minSize {
			minHdr = hdr
			minSize = es[hdr].x2
		}
	}
	if s.Debug {
		log.Printf("dlx: choose column %d (size %d)", es[minHdr].x1, minSize)
	}
	return minHdr
}
