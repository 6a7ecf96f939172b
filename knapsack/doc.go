// Package knapsack computes the optimal value of the 0/1 knapsack problem:
// pick a subset of items, each at most once, maximizing total value while
// total weight stays within a capacity budget.
//
// 🚀 Four exact solvers, one contract:
//
//	ExhaustiveSearch — every include/exclude decision, O(2ⁿ) time
//	MemoizedSearch   — same recursion + (item, capacity) cache, O(n·C) time & space
//	TabulationDP     — bottom-up 2-D table, O(n·C) time & space
//	SpaceOptimizedDP — bottom-up 1-D array, O(n·C) time, O(C) space
//
// All four take (values []float64, weights []int, capacity int) and return
// the same optimum for every valid input. Only the value is returned, not
// the selected items.
//
// ✨ Contract:
//   - len(values) == len(weights); weights ≥ 0; capacity ≥ 0;
//     values finite and ≥ 0. Violations return sentinel errors (errors.go)
//     before any work is done.
//   - Zero items or zero capacity yield 0.
//   - Solvers are pure: inputs are not mutated, all DP state lives in the
//     call, so concurrent calls are safe.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dp/knapsack"
//
//	best, err := knapsack.SpaceOptimizedDP(
//	  []float64{14, 10, 9, 20}, // values
//	  []int{6, 5, 4, 9},        // weights
//	  10,                       // capacity
//	)
//	// best == 23 (items of weight 6 and 4)
//
//	// or pick the solver at run time:
//	opts := knapsack.DefaultOptions()
//	opts.Algo = knapsack.Memoized
//	res, err := knapsack.Solve(values, weights, capacity, opts)
//
// The recursive solvers use one stack frame per item; Go stacks grow on
// demand, so depth n is not a practical limit. The exhaustive solver is
// exponential and is capped by Options.MaxExhaustiveItems when called
// through Solve.
package knapsack
