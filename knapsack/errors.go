// Package knapsack: sentinel error set.
// Every public solver validates its inputs up front and returns one of these
// sentinels (possibly wrapped with the offending item index). Callers match
// them via errors.Is. Solvers never panic on user-triggered conditions.
package knapsack

import "errors"

var (
	// ErrLengthMismatch is returned when values and weights differ in length.
	ErrLengthMismatch = errors.New("knapsack: values and weights must have equal length")

	// ErrNegativeCapacity is returned when the capacity budget is below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeWeight is returned when any item weight is below zero.
	// Negative weights would break the descending capacity traversal.
	ErrNegativeWeight = errors.New("knapsack: item weights must be non-negative")

	// ErrBadValue is returned when any item value is negative, NaN or infinite.
	ErrBadValue = errors.New("knapsack: item values must be finite and non-negative")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrBadOptions is returned by Solve for out-of-range Options fields.
	ErrBadOptions = errors.New("knapsack: invalid options")

	// ErrTooManyItems is returned by Solve when the exhaustive solver is
	// requested for more items than Options.MaxExhaustiveItems allows.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")
)
