// Package dlx solves the exact cover problem with Knuth's Dancing Links
// technique: given a 0/1 matrix described as columns 0..ncols-1 and a
// stream of rows (each row the set of columns where it has a 1), it finds
// every subset of rows that covers each column exactly once.
//
// Build a Solver once from the column count and row stream with New, then
// call Solve as many times as needed with a (possibly empty) partial
// assignment of "clue" rows and a Solutions sink:
//
//	s := dlx.New(ncols, dlx.Rows(matrix))
//	s.Solve(clues, dlx.SolutionFunc(func(sol dlx.Solution) bool {
//	    for row := range sol.All() {
//	        fmt.Println(row)
//	    }
//	    return true // keep searching
//	}))
//
// The matrix is represented internally as a quadruply-linked sparse
// structure addressed by small integer indices into an append-only arena,
// rather than by pointers, so that cover and uncover — the two primitives
// the search backtracks with — run in O(1) per removed entry with no
// allocation. A Solver is reusable: after Solve returns, by exhaustion or
// because the sink returned false, the arena is restored exactly, so a
// different clue set may be solved against the same matrix.
package dlx
