package main

import (
	"github.com/casetrail/casetrail"
	"github.com/spf13/cobra"
)

var (
	cfgSourceID string
	cfgDebug    bool
	cfgDebugLog string
	outputJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "casetrail",
	Short: "Casetrail - Test case management CLI",
	Long: `Casetrail is a CLI tool for working through test case sheets.

It loads a CSV of test cases, lets you step through them one at a time,
records every field-level change with provenance, and exports the updated
sheet.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgSourceID, "source-id", "", "Provenance stamp for change entries (default: hostname)")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Enable debug logging of session operations")
	rootCmd.PersistentFlags().StringVar(&cfgDebugLog, "debug-log", "", "Path to write debug logs (default: stderr)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON where supported")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(formatCmd)
}

func loadConfig() casetrail.Config {
	cfg := casetrail.ConfigFromEnv()

	// Flags take precedence over environment
	if cfgSourceID != "" {
		cfg.SourceID = cfgSourceID
	}
	if cfgDebug {
		cfg.Debug = true
	}
	if cfgDebugLog != "" {
		cfg.DebugLogPath = cfgDebugLog
	}

	return cfg
}
