package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dp/knapsack"
)

// TestDefaultOptions checks the production defaults.
func TestDefaultOptions(t *testing.T) {
	opts := knapsack.DefaultOptions()
	assert.Equal(t, knapsack.SpaceOptimized, opts.Algo)
	assert.Equal(t, knapsack.DefaultMaxExhaustiveItems, opts.MaxExhaustiveItems)

	var zero knapsack.Options
	assert.Equal(t, knapsack.SpaceOptimized, zero.Algo, "zero Options must pick the production solver")
}

// TestSolve_RoutesEveryAlgorithm verifies each Algorithm reaches a solver
// and is reported back in Result.
func TestSolve_RoutesEveryAlgorithm(t *testing.T) {
	values := []float64{14, 10, 9, 20}
	weights := []int{6, 5, 4, 9}

	for _, algo := range knapsack.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			opts := knapsack.DefaultOptions()
			opts.Algo = algo
			res, err := knapsack.Solve(values, weights, 10, opts)
			require.NoError(t, err)
			assert.Equal(t, 23.0, res.Value)
			assert.Equal(t, algo, res.Algo)
		})
	}
}

// TestSolve_UnsupportedAlgorithm verifies unknown selectors are rejected.
func TestSolve_UnsupportedAlgorithm(t *testing.T) {
	opts := knapsack.DefaultOptions()
	opts.Algo = knapsack.Algorithm(99)
	_, err := knapsack.Solve([]float64{1}, []int{1}, 1, opts)
	assert.ErrorIs(t, err, knapsack.ErrUnsupportedAlgorithm)

	opts.Algo = knapsack.Algorithm(-1)
	_, err = knapsack.Solve([]float64{1}, []int{1}, 1, opts)
	assert.ErrorIs(t, err, knapsack.ErrUnsupportedAlgorithm)
}

// TestSolve_ExhaustiveGuard verifies MaxExhaustiveItems only limits the
// exhaustive solver and 0 disables it.
func TestSolve_ExhaustiveGuard(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	weights := []int{1, 1, 1, 1}

	opts := knapsack.Options{Algo: knapsack.Exhaustive, MaxExhaustiveItems: 3}
	_, err := knapsack.Solve(values, weights, 2, opts)
	assert.ErrorIs(t, err, knapsack.ErrTooManyItems)

	opts.MaxExhaustiveItems = 4
	res, err := knapsack.Solve(values, weights, 2, opts)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Value)

	opts.MaxExhaustiveItems = 0
	res, err = knapsack.Solve(values, weights, 2, opts)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Value)

	opts = knapsack.Options{Algo: knapsack.Memoized, MaxExhaustiveItems: 1}
	res, err = knapsack.Solve(values, weights, 2, opts)
	require.NoError(t, err, "guard applies to Exhaustive only")
	assert.Equal(t, 7.0, res.Value)
}

// TestSolve_BadOptions verifies a negative guard is rejected.
func TestSolve_BadOptions(t *testing.T) {
	opts := knapsack.Options{Algo: knapsack.Tabulation, MaxExhaustiveItems: -1}
	_, err := knapsack.Solve([]float64{1}, []int{1}, 1, opts)
	assert.ErrorIs(t, err, knapsack.ErrBadOptions)
}

// TestSolve_PropagatesValidation verifies solver sentinels pass through.
func TestSolve_PropagatesValidation(t *testing.T) {
	for _, algo := range knapsack.Algorithms() {
		opts := knapsack.Options{Algo: algo}
		_, err := knapsack.Solve([]float64{1, 2}, []int{1}, 1, opts)
		assert.ErrorIs(t, err, knapsack.ErrLengthMismatch, algo.String())
	}
}

// TestSolveItems checks the struct-based entry point and Split.
func TestSolveItems(t *testing.T) {
	items := []knapsack.Item{
		{Value: 14, Weight: 6},
		{Value: 10, Weight: 5},
		{Value: 9, Weight: 4},
		{Value: 20, Weight: 9},
	}
	values, weights := knapsack.Split(items)
	assert.Equal(t, []float64{14, 10, 9, 20}, values)
	assert.Equal(t, []int{6, 5, 4, 9}, weights)

	res, err := knapsack.SolveItems(items, 10, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 23.0, res.Value)

	values, weights = knapsack.Split(nil)
	assert.Empty(t, values)
	assert.Empty(t, weights)
}

// TestAlgorithm_StringParse checks names round-trip and unknowns fail.
func TestAlgorithm_StringParse(t *testing.T) {
	for _, algo := range knapsack.Algorithms() {
		got, err := knapsack.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}

	got, err := knapsack.ParseAlgorithm("  Space-Optimized ")
	require.NoError(t, err)
	assert.Equal(t, knapsack.SpaceOptimized, got)

	_, err = knapsack.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, knapsack.ErrUnsupportedAlgorithm)

	assert.Equal(t, "Algorithm(7)", knapsack.Algorithm(7).String())
}
