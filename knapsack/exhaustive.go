package knapsack

// ExhaustiveSearch solves the 0/1 knapsack problem by exploring every
// include/exclude decision.
//
// Algorithm:
//  1. best(i, cap) = 0 when i == n.
//  2. best(i, 0) = sum of the remaining zero-weight values (nothing else fits).
//  3. Otherwise best(i, cap) = max(skip, take) where
//     skip = best(i+1, cap) and
//     take = values[i] + best(i+1, cap-weights[i]), only if weights[i] ≤ cap.
//  4. Answer best(0, capacity).
//
// Zero items or zero capacity return 0 without recursing.
//
// Complexity:
//
//	Time   = O(2ⁿ) leaf evaluations
//	Memory = O(n) call stack
//
// This is the correctness baseline for the other solvers; Solve guards it
// with Options.MaxExhaustiveItems, the direct call is unguarded.
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNegativeWeight, ErrBadValue.
func ExhaustiveSearch(values []float64, weights []int, capacity int) (float64, error) {
	n, err := validate(values, weights, capacity)
	if err != nil {
		return 0, err
	}
	if n == 0 || capacity == 0 {
		return 0, nil
	}

	var (
		free = freeSuffix(values, weights)
		best func(i, cp int) float64
	)
	best = func(i, cp int) float64 {
		if i == n {
			return 0
		}
		if cp == 0 {
			return free[i]
		}
		// skip item i
		res := best(i+1, cp)
		// take item i if it fits
		if weights[i] <= cp {
			if take := values[i] + best(i+1, cp-weights[i]); take > res {
				res = take
			}
		}

		return res
	}

	return best(0, capacity), nil
}

// freeSuffix returns s with s[i] = sum of values[j] for j ≥ i where
// weights[j] == 0, and s[n] = 0. Those items remain takeable once the
// remaining capacity reaches zero.
//
// Complexity: O(n) time and space.
func freeSuffix(values []float64, weights []int) []float64 {
	var (
		n = len(values)
		s = make([]float64, n+1)
		i int
	)
	for i = n - 1; i >= 0; i-- {
		s[i] = s[i+1]
		if weights[i] == 0 {
			s[i] += values[i]
		}
	}

	return s
}
