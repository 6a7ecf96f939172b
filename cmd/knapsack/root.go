package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is reported by --version and the version subcommand.
const version = "v0.1.0"

// app carries state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	log     *slog.Logger
	cfgFile string
}

// newRootCmd builds a fresh command tree. Each call owns its own viper
// instance, so tests can execute commands independently.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "knapsack",
		Short: "Run and cross-check 0/1 knapsack solvers",
		Long: `knapsack runs the exhaustive, memoized, tabulation and space-optimized
0/1 knapsack solvers and checks that they agree.

Configuration is layered: flags, then KNAPSACK_* environment variables,
then the --config YAML file, then built-in defaults (the reference sample).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			if err := a.loadConfig(cmd); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel))
			if err != nil {
				return err
			}
			a.log = logger

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().String(flagLogLevel, defaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(a.newSampleCmd())
	root.AddCommand(a.newSolveCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// newVersionCmd prints the CLI version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "knapsack", version)
		},
	}
}

// newLogger returns a text slog.Logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
