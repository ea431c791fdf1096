// Command dlx-sudoku reads .sdm lines from stdin (one 81-character 9x9
// grid per line) and prints the first solution for each, or "No
// solution" if the clues are unsatisfiable.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/sdm"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter one or more 81-character .sdm lines (digits 1-9, anything")
		fmt.Println("else for an empty cell). One solution is printed per line.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	s := dlx.New(sdm.Cols, dlx.Rows(sdm.Rows()))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		solveLine(s, line)
	}
	if err := scanner.Err(); err != nil {
		fatalError("error reading standard input", err.Error())
	}
}

func solveLine(s *dlx.Solver, line string) {
	clues, err := sdm.RowsFromLine(line)
	if err != nil {
		fatalError("invalid .sdm line", err.Error())
	}

	given := sdm.GridFromRows(clues)

	found := false
	s.Solve(clues, dlx.SolutionFunc(func(sol dlx.Solution) bool {
		found = true
		grid := sdm.GridFromRows(dlx.Collect(sol.All()))
		grid.Print(given)
		return false
	}))

	if !found {
		color.HiRed("No solution")
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func fatalError(msgs ...string) {
	msg := msgs[0]
	for _, m := range msgs[1:] {
		msg += ": " + m
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
