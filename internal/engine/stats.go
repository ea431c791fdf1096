// Package engine adds an optional, bounded/instrumented entry point on
// top of the dlx core engine, in the style of a DancingLinksOptions/
// DancingLinksStats wrapper around a search. It never touches the core
// search loop — it only wraps the caller's sink, since that is the only
// externally reachable instrumentation point Solve exposes.
package engine

import (
	"time"

	"github.com/kpitt/dlx"
)

// Options bounds a Solve call. A zero Options is usable: both fields
// disabled (no time limit, no solution cap).
type Options struct {
	// TimeLimit is checked each time a solution is pushed: the search
	// stops at the first solution pushed after the limit has passed. A
	// search that pushes no further solutions is not interrupted. Zero
	// means unbounded.
	TimeLimit time.Duration
	// MaxSolutions stops the search after this many solutions have been
	// pushed to the caller's sink. Zero means unbounded.
	MaxSolutions int
}

// DefaultOptions returns sensible defaults for an interactive CLI: a
// generous time limit and a cap of one solution (the common "solve it
// and show me the answer" case).
func DefaultOptions() *Options {
	return &Options{
		TimeLimit:    10 * time.Second,
		MaxSolutions: 1,
	}
}

// Stats reports what happened during a bounded Solve call.
type Stats struct {
	SolutionsFound int
	Elapsed        time.Duration
	// StoppedEarly is true if the search stopped because of opts, rather
	// than because the caller's sink returned false or search exhausted.
	StoppedEarly bool
}

// SolveWithOptions runs s.Solve(clues, sink), stopping early once
// opts.TimeLimit or opts.MaxSolutions (whichever is set and hit first)
// is found reached after a solution is pushed, and reports Stats for the
// call. A nil opts uses
// DefaultOptions.
func SolveWithOptions(s *dlx.Solver, clues [][]int, sink dlx.Solutions, opts *Options) *Stats {
	if opts == nil {
		opts = DefaultOptions()
	}

	stats := &Stats{}
	start := time.Now()
	deadline := time.Time{}
	if opts.TimeLimit > 0 {
		deadline = start.Add(opts.TimeLimit)
	}

	wrapped := dlx.SolutionFunc(func(sol dlx.Solution) bool {
		stats.SolutionsFound++
		keepGoing := sink.Push(sol)

		if !keepGoing {
			return false
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			stats.StoppedEarly = true
			return false
		}
		if opts.MaxSolutions > 0 && stats.SolutionsFound >= opts.MaxSolutions {
			stats.StoppedEarly = true
			return false
		}
		return true
	})

	s.Solve(clues, wrapped)
	stats.Elapsed = time.Since(start)
	return stats
}
