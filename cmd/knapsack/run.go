package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dp/knapsack"
)

// errMismatch is returned when solvers disagree with each other or with
// the expected optimum.
var errMismatch = errors.New("solver results disagree")

// newSampleCmd runs every solver on the reference sample.
func (a *app) newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Run all solvers on the reference sample",
		Long: `Run all four solvers on values=[14,10,9,20], weights=[6,5,4,9],
capacity=10 and compare each result with the expected optimum 23.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := instance{values: sampleValues, weights: sampleWeights, capacity: sampleCapacity}
			expected := sampleExpected

			return a.run(cmd.OutOrStdout(), in, knapsack.Algorithms(), &expected)
		},
	}
}

// newSolveCmd solves a configured instance.
func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a custom instance",
		Example: `  knapsack solve --values 14,10,9,20 --weights 6,5,4,9 --capacity 10
  knapsack solve --algo memoized --expected 23
  KNAPSACK_CAPACITY=15 knapsack solve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadInstance()
			if err != nil {
				return err
			}
			algos, err := selectAlgorithms(a.v.GetString(keyAlgo))
			if err != nil {
				return err
			}
			e, ok, err := a.expected()
			if err != nil {
				return err
			}
			var expected *float64
			if ok {
				expected = &e
			}

			return a.run(cmd.OutOrStdout(), in, algos, expected)
		},
	}

	f := cmd.Flags()
	f.String("values", "", "comma-separated item values")
	f.String("weights", "", "comma-separated item weights")
	f.Int("capacity", 0, "capacity budget")
	f.String("algo", algoAll, "solver: all, "+strings.Join(algorithmNames(), ", "))
	f.Float64("expected", 0, "expected optimum; a mismatch fails the command")

	return cmd
}

// selectAlgorithms resolves the --algo setting.
func selectAlgorithms(name string) ([]knapsack.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), algoAll) {
		return knapsack.Algorithms(), nil
	}
	algo, err := knapsack.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return []knapsack.Algorithm{algo}, nil
}

// algorithmNames lists the solver names accepted by --algo.
func algorithmNames() []string {
	algos := knapsack.Algorithms()
	names := make([]string, len(algos))
	for i, algo := range algos {
		names[i] = algo.String()
	}

	return names
}

// run solves in with each algorithm, prints one line per solver and, when
// expected is non-nil, a final "expected:" line. It fails on the first
// solver error and, after printing, on any disagreement.
func (a *app) run(w io.Writer, in instance, algos []knapsack.Algorithm, expected *float64) error {
	a.log.Debug("solving instance",
		"items", len(in.values),
		"capacity", in.capacity,
		"algorithms", len(algos))

	var (
		results = make([]knapsack.Result, 0, len(algos))
		opts    = knapsack.DefaultOptions()
	)
	for _, algo := range algos {
		opts.Algo = algo
		start := time.Now()
		res, err := knapsack.Solve(in.values, in.weights, in.capacity, opts)
		if err != nil {
			a.log.Error("solver failed", "algo", algo.String(), "error", err)

			return fmt.Errorf("%s: %w", algo, err)
		}
		a.log.Debug("solver finished",
			"algo", algo.String(),
			"value", res.Value,
			"elapsed", time.Since(start))
		results = append(results, res)
		fmt.Fprintf(w, "%-17s %g\n", algo.String()+":", res.Value)
	}
	if expected != nil {
		fmt.Fprintf(w, "%-17s %g\n", "expected:", *expected)
	}

	for _, res := range results {
		if res.Value != results[0].Value {
			return fmt.Errorf("%w: %s=%g, %s=%g", errMismatch,
				results[0].Algo, results[0].Value, res.Algo, res.Value)
		}
		if expected != nil && res.Value != *expected {
			return fmt.Errorf("%w: %s=%g, expected %g", errMismatch, res.Algo, res.Value, *expected)
		}
	}

	return nil
}
