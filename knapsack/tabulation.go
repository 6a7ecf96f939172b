package knapsack

// TabulationDP solves the 0/1 knapsack problem bottom-up over a 2-D table.
//
// table[i][c] is the best value obtainable from items 0..i (inclusive)
// with capacity budget c.
//
// Algorithm Outline:
//  1. Base row: table[0][c] = values[0] for c in [weights[0], C];
//     smaller budgets stay 0 because item 0 does not fit.
//  2. For i = 1..n-1 and c = 0..C:
//     skip = table[i-1][c]
//     take = values[i] + table[i-1][c-weights[i]] if weights[i] ≤ c, else not eligible
//     table[i][c] = max(skip, take)
//  3. Answer table[n-1][C].
//
// Zero items or zero capacity return 0 without allocating.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(n·C)
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNegativeWeight, ErrBadValue.
func TabulationDP(values []float64, weights []int, capacity int) (float64, error) {
	n, err := validate(values, weights, capacity)
	if err != nil {
		return 0, err
	}
	if n == 0 || capacity == 0 {
		return 0, nil
	}

	var (
		table = make([][]float64, n)
		i, c  int
	)
	for i = 0; i < n; i++ {
		table[i] = make([]float64, capacity+1)
	}

	// Stage 1: base row.
	for c = weights[0]; c <= capacity; c++ {
		table[0][c] = values[0]
	}

	// Stage 2: each row depends only on the previous one.
	var (
		prev, row  []float64
		skip, take float64
		w          int
	)
	for i = 1; i < n; i++ {
		prev, row, w = table[i-1], table[i], weights[i]
		for c = 0; c <= capacity; c++ {
			skip = prev[c]
			if w <= c {
				take = values[i] + prev[c-w]
				if take > skip {
					row[c] = take
					continue
				}
			}
			row[c] = skip
		}
	}

	return table[n-1][capacity], nil
}
