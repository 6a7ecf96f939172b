package knapsack

// SpaceOptimizedDP solves the 0/1 knapsack problem bottom-up over a single
// 1-D array reused across items. It is the production solver.
//
// dp[c] is the best value reachable at capacity c using the items processed
// so far. For each item i in order, c runs from C down to weights[i]:
//
//	dp[c] = max(dp[c], values[i] + dp[c-weights[i]])
//
// Answer dp[C]. Zero items or zero capacity return 0 without allocating.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(C)
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNegativeWeight, ErrBadValue.
func SpaceOptimizedDP(values []float64, weights []int, capacity int) (float64, error) {
	n, err := validate(values, weights, capacity)
	if err != nil {
		return 0, err
	}
	if n == 0 || capacity == 0 {
		return 0, nil
	}

	var (
		dp   = make([]float64, capacity+1)
		i, c int
		w    int
		take float64
	)
	for i = 0; i < n; i++ {
		w = weights[i]
		// The traversal MUST descend. dp[c-w] has to still hold the value
		// from before item i was considered; ascending order would read a
		// cell already updated for item i and count the item again
		// (unbounded knapsack). With w == 0 the cell reads itself before
		// the single write, so the item is still added once.
		for c = capacity; c >= w; c-- {
			if take = values[i] + dp[c-w]; take > dp[c] {
				dp[c] = take
			}
		}
	}

	return dp[capacity], nil
}
