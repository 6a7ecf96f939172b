// Config loading for the knapsack CLI.
package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

const (
	envPrefix = "KNAPSACK"

	// Config keys. Environment variables are KNAPSACK_<KEY>.
	keyValues   = "values"
	keyWeights  = "weights"
	keyCapacity = "capacity"
	keyAlgo     = "algo"
	keyExpected = "expected"
	keyLogLevel = "log_level"

	flagLogLevel    = "log-level"
	defaultLogLevel = "info"

	// algoAll selects every solver.
	algoAll = "all"
)

// Reference sample: laptop, vase, jewelry, tv. Laptop + jewelry = 23.
var (
	sampleValues   = []float64{14, 10, 9, 20}
	sampleWeights  = []int{6, 5, 4, 9}
	sampleCapacity = 10
	sampleExpected = 23.0
)

// flagKeys maps config keys to the flag names bound to them.
var flagKeys = map[string]string{
	keyValues:   "values",
	keyWeights:  "weights",
	keyCapacity: "capacity",
	keyAlgo:     "algo",
	keyExpected: "expected",
	keyLogLevel: flagLogLevel,
}

// errBadList is returned when a list setting has an unusable type.
var errBadList = errors.New("expected a comma-separated string or a list")

// instance is a fully decoded problem.
type instance struct {
	values   []float64
	weights  []int
	capacity int
}

// loadConfig layers defaults, the optional config file, the environment and
// the flags of cmd into a.v. Flags that cmd does not define are skipped.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.v
	v.SetDefault(keyValues, sampleValues)
	v.SetDefault(keyWeights, sampleWeights)
	v.SetDefault(keyCapacity, sampleCapacity)
	v.SetDefault(keyAlgo, algoAll)
	v.SetDefault(keyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", a.cfgFile, err)
		}
	}

	return nil
}

// loadInstance decodes the configured problem. Shape and sign checks are left
// to the solvers.
func (a *app) loadInstance() (instance, error) {
	values, err := parseList(a.v.Get(keyValues), cast.ToFloat64E)
	if err != nil {
		return instance{}, fmt.Errorf("%s: %w", keyValues, err)
	}
	weights, err := parseList(a.v.Get(keyWeights), cast.ToIntE)
	if err != nil {
		return instance{}, fmt.Errorf("%s: %w", keyWeights, err)
	}
	capacity, err := cast.ToIntE(a.v.Get(keyCapacity))
	if err != nil {
		return instance{}, fmt.Errorf("%s: %w", keyCapacity, err)
	}

	return instance{values: values, weights: weights, capacity: capacity}, nil
}

// expected returns the configured expected optimum, if one was given.
func (a *app) expected() (float64, bool, error) {
	if !a.v.IsSet(keyExpected) {
		return 0, false, nil
	}
	e, err := cast.ToFloat64E(a.v.Get(keyExpected))
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", keyExpected, err)
	}

	return e, true, nil
}

// parseList decodes a list setting. Flags and environment variables arrive
// as comma-separated strings, YAML lists as []any, defaults as []T.
func parseList[T any](raw any, conv func(any) (T, error)) ([]T, error) {
	var items []any
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case []T:
		return slices.Clone(x), nil
	case []any:
		items = x
	case string:
		if strings.TrimSpace(x) == "" {
			return nil, nil
		}
		for _, s := range strings.Split(x, ",") {
			items = append(items, strings.TrimSpace(s))
		}
	default:
		return nil, fmt.Errorf("%w, got %T", errBadList, raw)
	}

	out := make([]T, len(items))
	for i, it := range items {
		t, err := conv(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = t
	}

	return out, nil
}
