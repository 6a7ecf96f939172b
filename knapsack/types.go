package knapsack

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the four exact 0/1 knapsack solvers.
//
//   - Exhaustive     — full include/exclude recursion. Time O(2ⁿ), space O(n).
//   - Memoized       — the same recursion with an (item, capacity) cache.
//     Time O(n·C), space O(n·C).
//   - Tabulation     — bottom-up 2-D table. Time O(n·C), space O(n·C).
//   - SpaceOptimized — bottom-up 1-D array. Time O(n·C), space O(C).
type Algorithm int

const (
	// SpaceOptimized is the zero value and the production default.
	SpaceOptimized Algorithm = iota

	// Tabulation fills the full items × capacity table.
	Tabulation

	// Memoized runs top-down recursion with a dense cache.
	Memoized

	// Exhaustive enumerates every subset; use only for small n.
	Exhaustive
)

// algorithmNames is indexed by Algorithm.
var algorithmNames = [...]string{
	SpaceOptimized: "space-optimized",
	Tabulation:     "tabulation",
	Memoized:       "memoized",
	Exhaustive:     "exhaustive",
}

// String returns the canonical lower-case name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a canonical name (case-insensitive, surrounding
// whitespace ignored) back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	var key = strings.ToLower(strings.TrimSpace(name))
	for i, s := range algorithmNames {
		if s == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Algorithms returns every solver, slowest first. The exhaustive solver is
// the reference every other solver is checked against.
func Algorithms() []Algorithm {
	return []Algorithm{Exhaustive, Memoized, Tabulation, SpaceOptimized}
}

// DefaultMaxExhaustiveItems is the default Options.MaxExhaustiveItems.
// 2^30 leaf evaluations is already minutes of CPU.
const DefaultMaxExhaustiveItems = 30

// Options configures Solve.
//
// Fields:
//   - Algo               — solver to run (default SpaceOptimized).
//   - MaxExhaustiveItems — upper bound on n accepted for Exhaustive through
//     Solve; 0 disables the guard.
type Options struct {
	Algo               Algorithm
	MaxExhaustiveItems int
}

// DefaultOptions returns Options with the production solver and the
// exhaustive guard enabled.
func DefaultOptions() Options {
	return Options{
		Algo:               SpaceOptimized,
		MaxExhaustiveItems: DefaultMaxExhaustiveItems,
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Value is the maximum total value reachable within capacity.
	Value float64

	// Algo is the solver that produced Value.
	Algo Algorithm
}

// Item is one candidate for the knapsack. Items have no identity beyond
// their position in the input.
type Item struct {
	Value  float64
	Weight int
}

// Split converts items into the parallel values/weights slices the solvers
// take. Both slices have len(items) elements; nil input yields empty slices.
func Split(items []Item) (values []float64, weights []int) {
	values = make([]float64, len(items))
	weights = make([]int, len(items))
	for i, it := range items {
		values[i] = it.Value
		weights[i] = it.Weight
	}

	return values, weights
}
