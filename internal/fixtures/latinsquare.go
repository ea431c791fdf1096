// Package fixtures holds a Latin-square exact-cover fixture: a 3x3 grid
// where each cell takes one of three digits, each digit appears once per
// row, and once per column.
//
// Row (n*9 + r*3 + c) of the 27-row, 27-column matrix represents "place
// digit n+1 at (r, c)", with columns:
//
//	0..8   cell(r, c) occupancy, numbered r*3+c
//	9..17  digit n present in row r, numbered 9+n*3+r
//	18..26 digit n present in col c, numbered 18+n*3+c
package fixtures

const (
	// LatinSquareCols is the column count of the 3x3 Latin square matrix.
	LatinSquareCols = 27
	// LatinSquareRowCount is the row count of the 3x3 Latin square matrix.
	LatinSquareRowCount = 27
)

// LatinSquareRow returns the column set for placing digit n (0-indexed)
// at cell (r, c) of the 3x3 Latin square, matching the encoding above.
func LatinSquareRow(n, r, c int) []int {
	return []int{
		r*3 + c,
		9 + n*3 + r,
		18 + n*3 + c,
	}
}

// LatinSquareMatrix returns all 27 rows of the 3x3 Latin square exact
// cover matrix, in row-index order (row index n*9+r*3+c).
func LatinSquareMatrix() [][]int {
	rows := make([][]int, 0, LatinSquareRowCount)
	for n := range 3 {
		for r := range 3 {
			for c := range 3 {
				rows = append(rows, LatinSquareRow(n, r, c))
			}
		}
	}
	return rows
}

// ClueS2 is an unsatisfiable clue set: 1 at (0,0), 2 at (1,1), 1 at (2,2).
// It is unsatisfiable because the 1s at (0,0) and (2,2) leave (1,1) as the
// only place for the third 1, and (1,1) already holds 2.
func ClueS2() [][]int {
	return [][]int{
		LatinSquareRow(0, 0, 0),
		LatinSquareRow(1, 1, 1),
		LatinSquareRow(0, 2, 2),
	}
}

// ClueS3 is a forced-completion clue set: 1 at (0,0), 2 at (2,2). It has
// exactly one completion.
func ClueS3() [][]int {
	return [][]int{
		LatinSquareRow(0, 0, 0),
		LatinSquareRow(1, 2, 2),
	}
}

// ClueS4 is a second clue set intended to be solved against the same
// Solver already used for ClueS3, to exercise Solver reuse: 2 at (0,0), 1
// at (2,2).
func ClueS4() [][]int {
	return [][]int{
		LatinSquareRow(1, 0, 0),
		LatinSquareRow(0, 2, 2),
	}
}
