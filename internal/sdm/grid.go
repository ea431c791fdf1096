// Package sdm is the Sudoku collaborator for the dlx engine: it encodes
// 9x9 Sudoku as a 324-column exact cover matrix and decodes solutions back
// into grids. It is not part of the core engine; it is one concrete
// external user of the interfaces the core exposes.
package sdm

import "fmt"

const (
	sizeRt = 3
	size   = 9
	sizeSq = size * size

	// Cols is the column count of the Sudoku exact cover matrix: 81 cell
	// constraints, 81 column constraints, 81 row constraints, and 81 box
	// constraints.
	Cols = sizeSq * 4
)

// CoverRow returns the exact cover row for placing digit num (0-indexed,
// so digit 1 is num 0) at (row, col). The row names the four constraints
// that placement satisfies: the cell is filled, and the digit appears
// once each in its column, row, and box.
func CoverRow(num, row, col int) []int {
	box := (row/sizeRt)*sizeRt + col/sizeRt
	return []int{
		row*size + col,
		sizeSq + num*size + col,
		sizeSq*2 + num*size + row,
		sizeSq*3 + num*size + box,
	}
}

// Rows returns every row of the full Sudoku exact cover matrix: one
// CoverRow per (digit, row, col) combination, 729 rows in total.
func Rows() [][]int {
	rows := make([][]int, 0, size*size*size)
	for num := range size {
		for row := range size {
			for col := range size {
				rows = append(rows, CoverRow(num, row, col))
			}
		}
	}
	return rows
}

// RowsFromLine parses a single .sdm line (81 characters, one per cell in
// row-major order; any byte outside '1'..'9' marks an empty cell) into the
// clue rows that pre-cover the given digits.
func RowsFromLine(line string) ([][]int, error) {
	if len(line) != sizeSq {
		return nil, fmt.Errorf("%w: got %d", ErrBadLineLength, len(line))
	}
	var rows [][]int
	for row := range size {
		for col := range size {
			c := line[row*size+col]
			if c < '1' || c > '9' {
				continue
			}
			num := int(c - '1')
			rows = append(rows, CoverRow(num, row, col))
		}
	}
	return rows, nil
}

// CluesFromGrid builds clue rows from a 9x9 grid of digits, where 0 marks
// an empty cell and 1-9 are given digits.
func CluesFromGrid(grid [size][size]int) ([][]int, error) {
	var rows [][]int
	for row := range size {
		for col := range size {
			v := grid[row][col]
			if v == 0 {
				continue
			}
			if v < 1 || v > 9 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d", ErrBadCellValue, row, col, v)
			}
			rows = append(rows, CoverRow(v-1, row, col))
		}
	}
	return rows, nil
}

// Grid holds a solved (or partially solved) 9x9 Sudoku.
type Grid [size][size]int

// GridFromRows decodes the rows chosen by a solution (clue rows plus
// search-selected rows, in any order) back into a filled grid. Each row is
// the []int returned by CoverRow: row[0] identifies the cell, row[1]
// identifies the column constraint, from which the placed digit can be
// recovered.
func GridFromRows(rows [][]int) Grid {
	var g Grid
	for _, row := range rows {
		cellRow := row[0] / size
		cellCol := row[0] % size
		dlxCol := row[1] - sizeSq
		num := dlxCol / size
		g[cellRow][cellCol] = num + 1
	}
	return g
}

// Line renders the grid back into .sdm line format, using '0' for empty
// cells.
func (g Grid) Line() string {
	buf := make([]byte, 0, sizeSq)
	for row := range size {
		for col := range size {
			buf = append(buf, byte('0'+g[row][col]))
		}
	}
	return string(buf)
}
