// Package knapsack_test provides helpers shared across *_test.go files:
// the solver table, deterministic instance generation, and an independent
// bitmask brute force used as an oracle.
package knapsack_test

import (
	"math/rand"

	"github.com/katalvlaran/dp/knapsack"
)

const (
	// seedDet is the fixed seed for generated instances.
	seedDet = int64(42)

	// maxOracleItems bounds instances checked against the bitmask oracle.
	maxOracleItems = 12
)

// namedSolver pairs a solver with a readable name for subtests.
type namedSolver struct {
	name  string
	solve func(values []float64, weights []int, capacity int) (float64, error)
}

// solvers lists every public solver, reference first.
var solvers = []namedSolver{
	{"ExhaustiveSearch", knapsack.ExhaustiveSearch},
	{"MemoizedSearch", knapsack.MemoizedSearch},
	{"TabulationDP", knapsack.TabulationDP},
	{"SpaceOptimizedDP", knapsack.SpaceOptimizedDP},
}

// instance is one generated problem.
type instance struct {
	values   []float64
	weights  []int
	capacity int
}

// randomInstance draws n items with integer values in [0, 30] and weights in
// [0, 10]; zero weights are deliberately included. Integer-valued float64
// sums are exact, so solvers can be compared with plain equality.
func randomInstance(rng *rand.Rand, n int) instance {
	var in = instance{
		values:   make([]float64, n),
		weights:  make([]int, n),
		capacity: rng.Intn(4*n + 2),
	}
	for i := 0; i < n; i++ {
		in.values[i] = float64(rng.Intn(31))
		in.weights[i] = rng.Intn(11)
	}

	return in
}

// oracle enumerates every subset by bitmask and returns the best feasible
// value. Zero capacity yields 0 by contract. Exponential; n ≤ maxOracleItems.
func oracle(values []float64, weights []int, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	var (
		n    = len(values)
		best float64
	)
	for mask := 0; mask < 1<<n; mask++ {
		var (
			w int
			v float64
		)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += weights[i]
				v += values[i]
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// sum returns the total of xs.
func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
