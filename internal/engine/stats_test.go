package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/engine"
	"github.com/kpitt/dlx/internal/fixtures"
)

func TestSolveWithOptionsMaxSolutions(t *testing.T) {
	s := dlx.New(fixtures.LatinSquareCols, dlx.Rows(fixtures.LatinSquareMatrix()))

	var got []dlx.Solution
	sink := dlx.SolutionFunc(func(sol dlx.Solution) bool {
		got = append(got, sol)
		return true
	})

	stats := engine.SolveWithOptions(s, nil, sink, &engine.Options{MaxSolutions: 3})

	require.Equal(t, 3, stats.SolutionsFound)
	assert.True(t, stats.StoppedEarly)
	assert.Len(t, got, 3)
}

func TestSolveWithOptionsRespectsSinkStop(t *testing.T) {
	s := dlx.New(fixtures.LatinSquareCols, dlx.Rows(fixtures.LatinSquareMatrix()))

	count := 0
	sink := dlx.SolutionFunc(func(dlx.Solution) bool {
		count++
		return false
	})

	stats := engine.SolveWithOptions(s, nil, sink, &engine.Options{MaxSolutions: 5})

	assert.Equal(t, 1, count)
	assert.Equal(t, 1, stats.SolutionsFound)
	assert.False(t, stats.StoppedEarly)
}

func TestSolveWithOptionsDefault(t *testing.T) {
	s := dlx.New(fixtures.LatinSquareCols, dlx.Rows(fixtures.LatinSquareMatrix()))

	stats := engine.SolveWithOptions(s, nil, dlx.SolutionFunc(func(dlx.Solution) bool { return true }), nil)

	assert.Equal(t, 1, stats.SolutionsFound)
	assert.True(t, stats.StoppedEarly)
	assert.Less(t, stats.Elapsed, time.Second)
}
