// Package repro implements the skill path-mismatch reproduction harness.
package repro

import (
	"errors"
	"os"
	"testing"

	"github.com/reisepass/skillsctl/internal/skills"
)

func TestRunProducesFixedScenarioOrder(t *testing.T) {
	report := runHarness(t)

	wantOrder := []string{ScenarioHost, ScenarioContainer, ScenarioService}
	if len(report.Scenarios) != len(wantOrder) {
		t.Fatalf("report has %d scenarios, want %d", len(report.Scenarios), len(wantOrder))
	}
	for i, name := range wantOrder {
		if report.Scenarios[i].Name != name {
			t.Errorf("scenario[%d] = %q, want %q", i, report.Scenarios[i].Name, name)
		}
	}
	if report.RunID == "" {
		t.Error("RunID is empty")
	}
	if report.FinishedAt.Before(report.StartedAt) {
		t.Error("FinishedAt precedes StartedAt")
	}
}

func TestHostScenarioLoadsFixtures(t *testing.T) {
	report := runHarness(t)

	host, ok := report.Scenario(ScenarioHost)
	if !ok {
		t.Fatal("host scenario missing from report")
	}
	if host.Outcome != OutcomePassed {
		t.Fatalf("host outcome = %q, want passed (message: %s)", host.Outcome, host.Message)
	}
	if host.SkillCount != 3 {
		t.Errorf("host skill count = %d, want 3", host.SkillCount)
	}
}

func TestContainerScenarioReproducesDefect(t *testing.T) {
	report := runHarness(t)

	container, ok := report.Scenario(ScenarioContainer)
	if !ok {
		t.Fatal("container scenario missing from report")
	}
	if container.Outcome != OutcomeReproduced {
		t.Fatalf("container outcome = %q, want reproduced (message: %s)", container.Outcome, container.Message)
	}
	if container.SkillCount != 0 {
		t.Errorf("container skill count = %d, want 0", container.SkillCount)
	}
	if !report.Reproduced {
		t.Error("report.Reproduced = false, want true")
	}
	if report.ExitCode() != 0 {
		t.Errorf("ExitCode() = %d, want 0 for a reproduced defect", report.ExitCode())
	}
}

func TestServiceScenarioCountsUserSkills(t *testing.T) {
	report := runHarness(t)

	service, ok := report.Scenario(ScenarioService)
	if !ok {
		t.Fatal("service scenario missing from report")
	}
	if service.Outcome != OutcomePassed {
		t.Fatalf("service outcome = %q, want passed (message: %s)", service.Outcome, service.Message)
	}
	if service.SkillCount != 3 {
		t.Errorf("service user skill count = %d, want 3", service.SkillCount)
	}
}

func TestContainerScenarioRestoresDirOverride(t *testing.T) {
	sentinel := t.TempDir()
	t.Setenv(skills.EnvSkillsDirs, sentinel)

	h := NewHarness(Options{Home: t.TempDir()})
	if _, err := h.runContainer(); err != nil {
		t.Fatalf("runContainer() error = %v", err)
	}

	if got := os.Getenv(skills.EnvSkillsDirs); got != sentinel {
		t.Errorf("%s = %q after scenario, want %q restored", skills.EnvSkillsDirs, got, sentinel)
	}
}

func TestContainerScenarioRestoresUnsetOverride(t *testing.T) {
	t.Setenv(skills.EnvSkillsDirs, "placeholder")
	if err := os.Unsetenv(skills.EnvSkillsDirs); err != nil {
		t.Fatalf("Unsetenv() error = %v", err)
	}

	h := NewHarness(Options{Home: t.TempDir()})
	if _, err := h.runContainer(); err != nil {
		t.Fatalf("runContainer() error = %v", err)
	}

	if _, present := os.LookupEnv(skills.EnvSkillsDirs); present {
		t.Errorf("%s is set after scenario, want unset restored", skills.EnvSkillsDirs)
	}
}

func TestContainerScenarioRestoresOverrideAfterLoadError(t *testing.T) {
	sentinel := t.TempDir()
	t.Setenv(skills.EnvSkillsDirs, sentinel)

	h := NewHarness(Options{Home: t.TempDir()})
	h.loadUser = func() ([]skills.Skill, error) {
		return nil, errors.New("loader blew up")
	}

	if _, err := h.runContainer(); err == nil {
		t.Fatal("runContainer() error = nil, want forced load error")
	}

	if got := os.Getenv(skills.EnvSkillsDirs); got != sentinel {
		t.Errorf("%s = %q after failed scenario, want %q restored", skills.EnvSkillsDirs, got, sentinel)
	}
}

func TestExitCodeInvertedConvention(t *testing.T) {
	reproduced := &Report{Reproduced: true}
	if got := reproduced.ExitCode(); got != 0 {
		t.Errorf("ExitCode() = %d for reproduced defect, want 0", got)
	}

	notReproduced := &Report{Reproduced: false}
	if got := notReproduced.ExitCode(); got != 1 {
		t.Errorf("ExitCode() = %d for unreproduced defect, want 1", got)
	}
}

// runHarness runs the full harness against an isolated home directory.
func runHarness(t *testing.T) *Report {
	t.Helper()

	// Isolate from any ambient override and the developer's real home.
	t.Setenv(skills.EnvSkillsDirs, "placeholder")
	if err := os.Unsetenv(skills.EnvSkillsDirs); err != nil {
		t.Fatalf("Unsetenv() error = %v", err)
	}

	report, err := NewHarness(Options{Home: t.TempDir()}).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return report
}
