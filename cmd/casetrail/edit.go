package main

import (
	"fmt"

	"github.com/casetrail/casetrail/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var editOutput string

var editCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "Interactively step through and edit test cases",
	Long: `Load a CSV and open the interactive editor: one test case at a time,
with filtering by category and status, field-level change tracking, and
CSV export.

Example:
  casetrail edit cases.csv
  casetrail edit cases.csv -o reviewed.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editOutput, "output", "o", "", "Export path (default: timestamped filename)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	sess, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer sess.Close()

	model := tui.NewModel(sess, editOutput)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		if path := m.ExportedPath(); path != "" {
			printSuccess(cmd.OutOrStdout(), "Exported %s (%d changes)", path, sess.Changes().Count())
		} else if sess.Changes().Count() > 0 {
			printInfo(cmd.OutOrStdout(), "%d changes were made but not exported", sess.Changes().Count())
		}
	}
	return nil
}
