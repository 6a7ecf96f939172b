// Package knapsack - unified dispatcher over the four solvers.
//
// Solve and SolveItems are the canonical entry points when the algorithm is
// chosen at run time (CLI flags, configuration). They validate Options,
// apply the exhaustive-search guard and route to the selected solver; input
// validation is left to the solver itself so every path shares one contract.
package knapsack

import "fmt"

// solverFunc is the shared signature of every solver.
type solverFunc func(values []float64, weights []int, capacity int) (float64, error)

// solverFor returns the solver implementing a, or nil when a is unknown.
func solverFor(a Algorithm) solverFunc {
	switch a {
	case Exhaustive:
		return ExhaustiveSearch
	case Memoized:
		return MemoizedSearch
	case Tabulation:
		return TabulationDP
	case SpaceOptimized:
		return SpaceOptimizedDP
	default:
		return nil
	}
}

// Solve runs the solver selected by opts.Algo.
//
// Contracts:
//   - opts.Algo must be one of Algorithms().
//   - opts.MaxExhaustiveItems must be ≥ 0; 0 disables the guard.
//
// Errors: ErrUnsupportedAlgorithm, ErrBadOptions, ErrTooManyItems, plus every solver error.
func Solve(values []float64, weights []int, capacity int, opts Options) (Result, error) {
	solver := solverFor(opts.Algo)
	if solver == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algo)
	}
	if opts.MaxExhaustiveItems < 0 {
		return Result{}, fmt.Errorf("%w: MaxExhaustiveItems=%d", ErrBadOptions, opts.MaxExhaustiveItems)
	}
	if opts.Algo == Exhaustive && opts.MaxExhaustiveItems > 0 && len(values) > opts.MaxExhaustiveItems {
		return Result{}, fmt.Errorf("%w: n=%d, limit %d", ErrTooManyItems, len(values), opts.MaxExhaustiveItems)
	}

	v, err := solver(values, weights, capacity)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: v, Algo: opts.Algo}, nil
}

// SolveItems is Solve for items given as structs.
func SolveItems(items []Item, capacity int, opts Options) (Result, error) {
	values, weights := Split(items)

	return Solve(values, weights, capacity, opts)
}
