// Package main provides the knapsack CLI: a harness that runs the four 0/1
// knapsack solvers on the reference instance or on a caller-supplied one
// and reports whether they agree.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "knapsack:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
