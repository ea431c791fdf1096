// Command dlx-demo walks through a handful of exact cover problems —
// Sudoku puzzles of increasing difficulty, a Latin-square instance, and a
// deliberately unsatisfiable clue set — solving each with the dlx engine
// and printing before/after grids plus search statistics.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/engine"
	"github.com/kpitt/dlx/internal/fixtures"
	"github.com/kpitt/dlx/internal/sdm"
)

func main() {
	fmt.Println("Dancing Links exact cover walkthrough")
	fmt.Println("======================================")

	runSudokuCases()
	runLatinSquareCase()
	runUnsatisfiableCase()
}

var sudokuCases = []struct {
	name string
	grid sdm.Grid
}{
	{
		name: "Easy",
		grid: sdm.Grid{
			{5, 3, 0, 0, 7, 0, 0, 0, 0},
			{6, 0, 0, 1, 9, 5, 0, 0, 0},
			{0, 9, 8, 0, 0, 0, 0, 6, 0},
			{8, 0, 0, 0, 6, 0, 0, 0, 3},
			{4, 0, 0, 8, 0, 3, 0, 0, 1},
			{7, 0, 0, 0, 2, 0, 0, 0, 6},
			{0, 6, 0, 0, 0, 0, 2, 8, 0},
			{0, 0, 0, 4, 1, 9, 0, 0, 5},
			{0, 0, 0, 0, 8, 0, 0, 7, 9},
		},
	},
	{
		name: "Hard",
		grid: sdm.Grid{
			{0, 0, 0, 0, 0, 0, 0, 1, 0},
			{4, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 6, 0, 2},
			{0, 0, 0, 0, 0, 3, 0, 7, 0},
			{5, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 2, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
	},
}

func runSudokuCases() {
	s := dlx.New(sdm.Cols, dlx.Rows(sdm.Rows()))

	for i, tc := range sudokuCases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Sudoku case"), i+1, color.HiYellowString(tc.name))
		fmt.Println(color.HiBlueString("Given:"))
		tc.grid.Print(sdm.Grid{})

		clues, err := sdm.CluesFromGrid(tc.grid)
		if err != nil {
			color.HiRed("invalid puzzle: %v", err)
			continue
		}

		var solved sdm.Grid
		found := false
		stats := engine.SolveWithOptions(s, clues, dlx.SolutionFunc(func(sol dlx.Solution) bool {
			found = true
			solved = sdm.GridFromRows(dlx.Collect(sol.All()))
			return true
		}), engine.DefaultOptions())

		if found {
			fmt.Println(color.HiGreenString("Solution (%.3fms, %d solution(s) found):", float64(stats.Elapsed.Microseconds())/1000, stats.SolutionsFound))
			solved.Print(tc.grid)
		} else {
			color.HiRed("No solution")
		}
	}
}

func runLatinSquareCase() {
	fmt.Println(color.HiBlueString("\nLatin square case: 3x3, no clues"))

	s := dlx.New(fixtures.LatinSquareCols, dlx.Rows(fixtures.LatinSquareMatrix()))
	stats := engine.SolveWithOptions(s, nil, dlx.SolutionFunc(func(sol dlx.Solution) bool {
		return true
	}), &engine.Options{MaxSolutions: 0, TimeLimit: engine.DefaultOptions().TimeLimit})

	fmt.Printf("Solutions found: %s (%.3fms)\n", color.HiGreenString("%d", stats.SolutionsFound), float64(stats.Elapsed.Microseconds())/1000)
}

func runUnsatisfiableCase() {
	fmt.Println(color.HiBlueString("\nUnsatisfiable case: contradictory Latin-square clues"))

	s := dlx.New(fixtures.LatinSquareCols, dlx.Rows(fixtures.LatinSquareMatrix()))
	found := false
	stats := engine.SolveWithOptions(s, fixtures.ClueS2(), dlx.SolutionFunc(func(sol dlx.Solution) bool {
		found = true
		return false
	}), engine.DefaultOptions())

	if found {
		color.HiRed("expected no solution, but found one")
		return
	}
	fmt.Printf("%s (%.3fms)\n", color.HiGreenString("Correctly reported unsatisfiable"), float64(stats.Elapsed.Microseconds())/1000)
}
