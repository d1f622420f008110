package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var normalizeOutput string

var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Rewrite a sheet with canonical headers and field order",
	Long: `Load a CSV (accepting legacy header spellings) and re-export it with the
canonical header, all eleven fields, and ISO dates.

Example:
  casetrail normalize legacy.csv -o cases.csv
  casetrail normalize legacy.csv > cases.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Output path (default: stdout)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	sess, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer sess.Close()

	if normalizeOutput == "" {
		return sess.Export(cmd.OutOrStdout())
	}

	f, err := os.Create(normalizeOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", normalizeOutput, err)
	}
	defer f.Close()

	if err := sess.Export(f); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	printSuccess(cmd.OutOrStdout(), "Wrote %s", normalizeOutput)
	return nil
}
