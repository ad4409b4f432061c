// Package repro implements the skill path-mismatch reproduction harness.
package repro

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

// fixedReport is a deterministic report for rendering tests.
func fixedReport() *Report {
	start := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	return &Report{
		RunID:      "00000000-0000-0000-0000-000000000000",
		StartedAt:  start,
		FinishedAt: start.Add(2 * time.Second),
		Scenarios: []ScenarioResult{
			{Name: ScenarioHost, Outcome: OutcomePassed, SkillCount: 3, Message: "loader returned 3 skills from the home directory"},
			{Name: ScenarioContainer, Outcome: OutcomeReproduced, SkillCount: 0, Message: "mount point holds 3 skill files but loader returned 0"},
			{Name: ScenarioService, Outcome: OutcomePassed, SkillCount: 3, Message: "aggregation returned 3 user skills"},
		},
		Reproduced: true,
	}
}

func TestSummaryGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "summary", []byte(fixedReport().Summary()))
}

func TestVerdict(t *testing.T) {
	report := fixedReport()
	verdict := report.Verdict()
	if verdict == "" {
		t.Fatal("Verdict() returned empty string")
	}

	report.Scenarios[1].Outcome = OutcomeInconclusive
	if got := report.Verdict(); got == verdict {
		t.Error("Verdict() unchanged for inconclusive outcome")
	}

	empty := &Report{}
	if got := empty.Verdict(); got != "container scenario did not run" {
		t.Errorf("Verdict() on empty report = %q", got)
	}
}
