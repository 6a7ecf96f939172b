package knapsack

// uncomputed marks an empty memo cell. Real results are never negative.
const uncomputed = -1.0

// MemoizedSearch solves the 0/1 knapsack problem top-down: the recursion of
// ExhaustiveSearch plus a dense cache keyed by (item index, remaining capacity).
//
// Before recursing on (i, cap) the cache is consulted; a recorded value is
// returned directly. A freshly computed value is stored before returning, so
// each distinct pair is solved at most once.
//
// Zero items or zero capacity return 0 without allocating the cache.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(n·C) cache + O(n) call stack
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNegativeWeight, ErrBadValue.
func MemoizedSearch(values []float64, weights []int, capacity int) (float64, error) {
	n, err := validate(values, weights, capacity)
	if err != nil {
		return 0, err
	}
	if n == 0 || capacity == 0 {
		return 0, nil
	}

	// cache[i][c] holds best(i, c) or uncomputed.
	var (
		cache = make([][]float64, n)
		i, c  int
	)
	for i = 0; i < n; i++ {
		cache[i] = make([]float64, capacity+1)
		for c = 0; c <= capacity; c++ {
			cache[i][c] = uncomputed
		}
	}

	var (
		free = freeSuffix(values, weights)
		memo func(i, cp int) float64
	)
	memo = func(i, cp int) float64 {
		if i == n {
			return 0
		}
		if cp == 0 {
			return free[i]
		}
		if v := cache[i][cp]; v != uncomputed {
			return v
		}
		res := memo(i+1, cp) // skip
		if weights[i] <= cp { // take
			if take := values[i] + memo(i+1, cp-weights[i]); take > res {
				res = take
			}
		}
		cache[i][cp] = res

		return res
	}

	return memo(0, capacity), nil
}
