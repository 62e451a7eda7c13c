package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <job.yaml|job.toml>",
	Short: "Evaluate the operation described in a job file",
	Long: `Evaluate one array operation and print the result.

Example job (YAML):

  op: "*"
  lhs: {mode: matrix, rows: 2, cols: 3, data: [1, 2, 3, 4, 5, 6]}
  rhs: {mode: matrix, rows: 3, cols: 1, data: [1, 1, 1]}

Reductions (sum, max, min) take an axis (rows, cols, both) and no rhs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := LoadJob(args[0])
		if err != nil {
			return fmt.Errorf("load job: %w", err)
		}
		e := newEnv(cmd.ErrOrStderr())
		out, err := job.Run(e)
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
