package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/casetrail/casetrail"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Show record counts for a test case sheet",
	Long: `Load a CSV and display record counts by status and category.

Example:
  casetrail stats cases.csv
  casetrail stats cases.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer sess.Close()

	stats, err := sess.Stats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, stats)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Test Case Sheet: %s\n", args[0])
	fmt.Fprintf(out, "  Records: %d\n", stats.RecordCount)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "By Status")
	fmt.Fprintln(out, "---------")
	for _, status := range sortedKeys(stats.ByStatus) {
		label := status
		if label == "" {
			label = "(blank)"
		} else {
			label = renderStatus(label)
		}
		fmt.Fprintf(out, "  %-28s %d\n", label, stats.ByStatus[status])
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "By Category")
	fmt.Fprintln(out, "-----------")
	for _, category := range sortedKeys(stats.ByCategory) {
		label := category
		if label == "" {
			label = "(blank)"
		}
		fmt.Fprintf(out, "  %-28s %d\n", label, stats.ByCategory[category])
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// openSession creates a session and loads the given CSV into it.
func openSession(path string) (*casetrail.Session, error) {
	sess, err := casetrail.NewSession(loadConfig())
	if err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		sess.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := sess.LoadCSV(f); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}
