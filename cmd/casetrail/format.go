package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const formatDoc = `# Expected CSV Format

The input sheet needs a header row naming at least the **ID** column.
Any other canonical column that is missing is synthesized as empty;
unrecognized columns are ignored.

## Canonical columns

| Column          | Notes                                          |
|-----------------|------------------------------------------------|
| ID              | External identifier, used in the change log    |
| Category        | Free text, used for filtering                  |
| TestCase        | Short name                                     |
| Description     | What the test verifies                         |
| Input           | Steps or inputs                                |
| ExpectedOutcome | What should happen                             |
| Environment     | Browser, OS, device                            |
| ObservedOutcome | What actually happened                         |
| Status          | Pending, Passed, Failed, Blocked, or free text |
| LastTestDate    | ISO date (other layouts are canonicalized)     |
| Notes           | Anything else                                  |

## Legacy headers

These spellings from older sheet exports are accepted on import:
` + "`Test Case`, `Test Description`, `Test Input`, `Expected Outcome`," + `
` + "`Test Env`, `Observed Outcome`, `Test Status`, `Last Test Date`," + `
` + "`Date of Last Test`." + `
Exports always use the canonical spellings.

## Example

` + "```csv" + `
ID,Category,TestCase,Description,Input,ExpectedOutcome,Environment,ObservedOutcome,Status,LastTestDate,Notes
TC001,Login,Valid Login,Login with valid credentials,"username: admin",Successfully logged in,"Chrome, Windows 10",,Pending,,
TC002,Navigation,Menu Navigation,Main menu navigation,Click on menu items,Menu items work,"Firefox, MacOS",,Pending,,
` + "```" + `
`

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Describe the expected CSV format",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(formatDoc))
		return nil
	},
}
