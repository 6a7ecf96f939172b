// Package dp is a collection of exact dynamic-programming solvers written
// as small, dependency-light Go packages.
//
// 🚀 What is inside?
//
//	knapsack/     — 0/1 knapsack: exhaustive, memoized, tabulation and
//	                space-optimized solvers behind one contract
//	cmd/knapsack/ — CLI harness that runs and cross-checks the solvers
//
// ✨ Guarantees shared by every package:
//
//   - Pure functions: inputs are never mutated, all DP state is per call.
//   - Strict sentinels: invalid input is rejected up front, never panics.
//   - Documented complexity on every exported solver.
//
//	go get github.com/katalvlaran/dp/knapsack
package dp
