// Package knapsack - input validation shared by all solvers.
//
// Policy:
//   - Checks run before any allocation, recursion or iteration.
//   - Priority: shape -> capacity -> weights -> values; the first failing
//     index wins and is attached to the wrapped sentinel.
//   - Empty item sets and zero capacity are valid inputs, not errors.
package knapsack

import (
	"fmt"
	"math"
)

// validate verifies the solver contract and returns n = len(values).
//
// Complexity: O(n) time, O(1) space.
func validate(values []float64, weights []int, capacity int) (int, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("%w: %d values, %d weights", ErrLengthMismatch, len(values), len(weights))
	}
	if capacity < 0 {
		return 0, ErrNegativeCapacity
	}

	var (
		n = len(values)
		i int // item index
	)
	for i = 0; i < n; i++ {
		if weights[i] < 0 {
			return 0, fmt.Errorf("%w: index %d", ErrNegativeWeight, i)
		}
	}
	for i = 0; i < n; i++ {
		// NaN fails every comparison, so test it explicitly.
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) || values[i] < 0 {
			return 0, fmt.Errorf("%w: index %d", ErrBadValue, i)
		}
	}

	return n, nil
}
