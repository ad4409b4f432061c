// Package repro implements the skill path-mismatch reproduction harness.
package repro

import (
	"fmt"
	"strings"
)

// Summary renders the plain-text report table: one row per scenario in
// execution order, followed by the verdict line. Styling is applied by
// the caller, not here, so the summary stays stable for logs and tests.
//
// Returns:
//   - string: The rendered summary
func (r *Report) Summary() string {
	var b strings.Builder

	b.WriteString("REPRODUCTION REPORT\n")
	fmt.Fprintf(&b, "run %s\n\n", r.RunID)

	fmt.Fprintf(&b, "%-12s %-16s %s\n", "SCENARIO", "OUTCOME", "SKILLS")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	for _, sc := range r.Scenarios {
		fmt.Fprintf(&b, "%-12s %-16s %d\n", sc.Name, string(sc.Outcome), sc.SkillCount)
	}

	b.WriteString("\n")
	if r.Reproduced {
		b.WriteString("Defect reproduced: yes (exit code 0)\n")
	} else {
		b.WriteString("Defect reproduced: no (exit code 1)\n")
	}

	return b.String()
}

// Verdict returns the one-line explanation of the container scenario's
// finding, for the end of the human-readable report.
func (r *Report) Verdict() string {
	sc, ok := r.Scenario(ScenarioContainer)
	if !ok {
		return "container scenario did not run"
	}

	switch sc.Outcome {
	case OutcomeReproduced:
		return "Confirmed: home-directory resolution diverges from the volume mount point, so the derived candidate directories are empty and user skills never load. " + sc.Message
	case OutcomeNotReproduced:
		return "Not reproduced: the loader found skills despite the simulated path mismatch. " + sc.Message
	case OutcomeInconclusive:
		return "Inconclusive: " + sc.Message
	default:
		return sc.Message
	}
}
