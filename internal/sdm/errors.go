package sdm

import "errors"

// ErrBadLineLength is returned by RowsFromLine when a line is not exactly
// one character per cell of a 9x9 grid.
var ErrBadLineLength = errors.New("sdm: line must be 81 characters")

// ErrBadCellValue is returned by CluesFromGrid when a cell holds a digit
// outside 1..9.
var ErrBadCellValue = errors.New("sdm: cell value must be 1-9")
