// Package cmd implements the grid command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/modelkit/grid/internal/env"
)

var (
	verbose bool
	checks  bool
)

var rootCmd = &cobra.Command{
	Use:   "grid",
	Short: "Strided 2D array views for optimization models",
	Long: `grid evaluates array operations described in YAML or TOML job files.

Operands are dense float64 arrays or scalars; operators follow the same
shape rules as the library: equal shapes, scalar broadcasting and
matrix products in matrix mode.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports a failure once on the
// command's error writer.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		printError(cmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&checks, "checks", true, "enable bounds checks on every element access")
}

// newEnv builds the environment for one command invocation.
func newEnv(stderr io.Writer) *env.Env {
	opts := []env.Option{env.WithName("grid-cli"), env.WithChecks(checks)}
	if verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, env.WithLogger(slog.New(h)))
	}
	return env.New(opts...)
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
}
