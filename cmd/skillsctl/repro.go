// Package main provides the repro command.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reisepass/skillsctl/internal/repro"
	"github.com/reisepass/skillsctl/internal/ui"
)

var (
	reproOutputJSON   bool
	reproKeepFixtures bool
	reproHome         string
)

// reproCmd reproduces the container path-mismatch defect.
var reproCmd = &cobra.Command{
	Use:   "repro",
	Short: "Reproduce the container skill-loading defect",
	Long: `Reproduce the defect where user skills fail to load inside a
container because home-directory resolution does not match the volume
mount point.

SCENARIOS (run in fixed order):
  host       Fixtures under the real home directory; loader must find them
  container  Empty fake home next to a populated mount; loader must miss them
  service    Full aggregation call with only the user source enabled

EXIT CODE:
  0  The container scenario reproduced the defect (confirmation succeeded)
  1  The defect was not reproduced

The convention is inverted on purpose: this command exists to confirm
the defect, so a reproduction is the success case.

EXAMPLES:
  skillsctl repro                  # Run all three scenarios
  skillsctl repro --json           # Machine-readable report
  skillsctl repro --keep-fixtures  # Leave the simulated tree on disk`,
	Args: cobra.NoArgs,
	RunE: runRepro,
}

func init() {
	reproCmd.Flags().BoolVar(&reproOutputJSON, "json", false, "Output the report as JSON")
	reproCmd.Flags().BoolVar(&reproKeepFixtures, "keep-fixtures", false, "Keep the container scenario's temporary tree for inspection")
	reproCmd.Flags().StringVar(&reproHome, "home", "", "Override home directory resolution (for isolated runs)")
}

// runRepro executes the reproduction harness and reports the verdict.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command arguments (unused, validated as empty by cobra)
//
// Returns:
//   - error: Non-nil when the defect was not reproduced, per the
//     inverted exit-code convention
func runRepro(cmd *cobra.Command, args []string) error {
	jsonOutput := reproOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}

	harness := repro.NewHarness(repro.Options{
		Home:         reproHome,
		KeepFixtures: reproKeepFixtures,
	})

	report, err := harness.Run()
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printReproReport(report)
	}

	if !report.Reproduced {
		return fmt.Errorf("defect not reproduced")
	}
	return nil
}

// printReproReport prints the human-readable scenario details and the
// summary table.
//
// Parameters:
//   - report: The harness report
func printReproReport(report *repro.Report) {
	for _, sc := range report.Scenarios {
		ui.Println()
		ui.PrintInfo("── %s scenario", sc.Name)
		for _, detail := range sc.Details {
			ui.PrintDim("  %s", detail)
		}

		line := fmt.Sprintf("  %s", sc.Message)
		switch sc.Outcome {
		case repro.OutcomePassed:
			fmt.Println(ui.StatusPassedStyle.Render(line))
		case repro.OutcomeReproduced:
			fmt.Println(ui.StatusReproducedStyle.Render(line))
		case repro.OutcomeInconclusive:
			fmt.Println(ui.StatusWarnStyle.Render(line))
		default:
			fmt.Println(ui.StatusFailedStyle.Render(line))
		}
	}

	ui.Println()
	fmt.Println(report.Summary())
	ui.PrintInfo("%s", report.Verdict())
}
