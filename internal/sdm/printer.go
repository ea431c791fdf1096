package sdm

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌───────┬───────┬───────┐"
	borderBot    = "└───────┴───────┴───────┘"
	dividerMinor = "├───────┼───────┼───────┤"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow)
	solvedColor = color.New(color.FgHiGreen)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print writes the grid to stdout with box-drawing borders, highlighting
// given cells against given (clue grid), and solved cells in green.
// given may be the zero Grid if there is nothing to distinguish.
func (g Grid) Print(given Grid) {
	color.HiWhite(borderTop)
	for row := range size {
		if row != 0 && row%3 == 0 {
			color.HiWhite(dividerMinor)
		}
		printRow(g, given, row)
	}
	color.HiWhite(borderBot)
}

func printRow(g, given Grid, row int) {
	fmt.Print("│ ")
	for col := range size {
		if col != 0 && col%3 == 0 {
			fmt.Print("│ ")
		}
		v := g[row][col]
		switch {
		case v == 0:
			emptyColor.Print("· ")
		case given[row][col] != 0:
			givenColor.Printf("%d ", v)
		default:
			solvedColor.Printf("%d ", v)
		}
	}
	fmt.Println("│")
}
