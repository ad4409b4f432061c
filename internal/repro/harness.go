// Package repro implements the skill path-mismatch reproduction harness.
package repro

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/reisepass/skillsctl/internal/skills"
	"github.com/reisepass/skillsctl/internal/skillset"
)

// Outcome is the result classification of a single scenario.
type Outcome string

const (
	// OutcomePassed indicates the scenario behaved as intended.
	OutcomePassed Outcome = "passed"

	// OutcomeFailed indicates the scenario did not behave as intended.
	OutcomeFailed Outcome = "failed"

	// OutcomeReproduced indicates the container scenario confirmed the
	// defect: the mount holds skill files but the loader returned none.
	OutcomeReproduced Outcome = "reproduced"

	// OutcomeNotReproduced indicates the container scenario loaded
	// skills despite the simulated path mismatch.
	OutcomeNotReproduced Outcome = "not_reproduced"

	// OutcomeInconclusive indicates the container scenario could not
	// distinguish the defect from a genuinely empty configuration.
	OutcomeInconclusive Outcome = "inconclusive"
)

// Scenario names, in fixed execution order.
const (
	ScenarioHost      = "host"
	ScenarioContainer = "container"
	ScenarioService   = "service"
)

// ScenarioResult is the recorded outcome of one scenario.
type ScenarioResult struct {
	// Name is the scenario name.
	Name string `json:"name"`

	// Outcome classifies the result.
	Outcome Outcome `json:"outcome"`

	// SkillCount is the number of records the loader returned.
	SkillCount int `json:"skill_count"`

	// Message is the one-line human-readable result.
	Message string `json:"message"`

	// Details contains supporting lines (paths, record attributes).
	Details []string `json:"details,omitempty"`
}

// Report is the aggregated outcome of a full harness run.
type Report struct {
	// RunID uniquely identifies this harness run.
	RunID string `json:"run_id"`

	// StartedAt and FinishedAt bound the run (UTC).
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Scenarios holds per-scenario results in execution order.
	Scenarios []ScenarioResult `json:"scenarios"`

	// Reproduced is true when the container scenario confirmed the
	// defect.
	Reproduced bool `json:"reproduced"`
}

// ExitCode returns the process exit code for the report. The convention
// is inverted on purpose: the harness exists to confirm the defect, so
// a reproduced defect is the success case.
//
// Returns:
//   - int: 0 when the defect was reproduced, 1 otherwise
func (r *Report) ExitCode() int {
	if r.Reproduced {
		return 0
	}
	return 1
}

// Scenario returns the result for the named scenario, if present.
func (r *Report) Scenario(name string) (ScenarioResult, bool) {
	for _, sc := range r.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return ScenarioResult{}, false
}

// Options configures a harness run.
type Options struct {
	// Home overrides home-directory resolution for the host and
	// service scenarios. Empty means resolve the real home.
	Home string

	// KeepFixtures leaves the container scenario's temporary tree on
	// disk for inspection instead of removing it.
	KeepFixtures bool
}

// Harness runs the three reproduction scenarios in fixed order.
type Harness struct {
	opts Options

	// loadUser is the no-argument loader entry point the container
	// scenario exercises. Overridable in tests.
	loadUser func() ([]skills.Skill, error)
}

// NewHarness creates a harness with the given options.
func NewHarness(opts Options) *Harness {
	return &Harness{opts: opts, loadUser: skills.LoadUser}
}

// Run executes the host, container, and service scenarios in order and
// returns the aggregated report. Scenario order is fixed for reporting
// clarity; the scenarios themselves are independent.
//
// Returns:
//   - *Report: The aggregated report
//   - error: If fixture setup or loading fails unexpectedly
func (h *Harness) Run() (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	host, err := h.runHost()
	if err != nil {
		return nil, fmt.Errorf("host scenario: %w", err)
	}
	report.Scenarios = append(report.Scenarios, host)

	container, err := h.runContainer()
	if err != nil {
		return nil, fmt.Errorf("container scenario: %w", err)
	}
	report.Scenarios = append(report.Scenarios, container)
	report.Reproduced = container.Outcome == OutcomeReproduced

	service, err := h.runService()
	if err != nil {
		return nil, fmt.Errorf("service scenario: %w", err)
	}
	report.Scenarios = append(report.Scenarios, service)

	report.FinishedAt = time.Now().UTC()
	return report, nil
}

// home resolves the effective home directory for the host and service
// scenarios.
func (h *Harness) home() (string, error) {
	if h.opts.Home != "" {
		return h.opts.Home, nil
	}
	return skills.ResolveHome()
}

// runHost exercises the intended deployment: fixtures beneath the real
// home directory, loader pointed at the default candidates.
func (h *Harness) runHost() (ScenarioResult, error) {
	result := ScenarioResult{Name: ScenarioHost}

	home, err := h.home()
	if err != nil {
		return result, err
	}

	skillsDir := filepath.Join(home, skills.AppDirName, skills.SkillsDirName)
	written, err := WriteFixtures(skillsDir)
	if err != nil {
		return result, err
	}
	result.Details = append(result.Details, fmt.Sprintf("created %d fixtures in %s", len(written), skillsDir))

	dirs := skills.DefaultUserDirs(home)
	for _, dir := range dirs {
		result.Details = append(result.Details, describeDir(dir))
	}

	records, err := skills.NewLoader(skills.SourceUser, dirs...).Load()
	if err != nil {
		return result, err
	}
	result.SkillCount = len(records)
	for _, sk := range records {
		result.Details = append(result.Details, describeSkill(sk))
	}

	if len(records) > 0 {
		result.Outcome = OutcomePassed
		result.Message = fmt.Sprintf("loader returned %d skills from the home directory", len(records))
	} else {
		result.Outcome = OutcomeFailed
		result.Message = "loader returned no skills on the host"
	}
	return result, nil
}

// runContainer simulates the container deployment: an empty fake home
// next to a populated mount directory, with the candidate directory
// override pointed at the fake home. The override and the temporary
// tree are undone unconditionally.
func (h *Harness) runContainer() (result ScenarioResult, err error) {
	result = ScenarioResult{Name: ScenarioContainer}

	tmp, err := os.MkdirTemp("", "skillsctl-repro-*")
	if err != nil {
		return result, fmt.Errorf("failed to create temp tree: %w", err)
	}
	defer func() {
		if h.opts.KeepFixtures {
			log.Info("Keeping container scenario tree", "dir", tmp)
			return
		}
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			log.Warn("Failed to remove temp tree", "dir", tmp, "error", rmErr)
		}
	}()

	fakeHome := filepath.Join(tmp, "fake_root")
	if err := os.MkdirAll(fakeHome, 0755); err != nil {
		return result, fmt.Errorf("failed to create fake home: %w", err)
	}

	mountDir := filepath.Join(tmp, skills.AppDirName, skills.SkillsDirName)
	written, err := WriteFixtures(mountDir)
	if err != nil {
		return result, err
	}
	result.Details = append(result.Details, fmt.Sprintf("created %d fixtures at mount point %s", len(written), mountDir))

	containerDirs := skills.DefaultUserDirs(fakeHome)
	for _, dir := range containerDirs {
		result.Details = append(result.Details, describeDir(dir))
	}

	// Point the no-argument loader entry point at the fake home the
	// way the container's environment would, and restore the previous
	// value no matter how the load goes.
	prev, had := os.LookupEnv(skills.EnvSkillsDirs)
	if err := os.Setenv(skills.EnvSkillsDirs, strings.Join(containerDirs, string(os.PathListSeparator))); err != nil {
		return result, fmt.Errorf("failed to override %s: %w", skills.EnvSkillsDirs, err)
	}
	defer func() {
		var restoreErr error
		if had {
			restoreErr = os.Setenv(skills.EnvSkillsDirs, prev)
		} else {
			restoreErr = os.Unsetenv(skills.EnvSkillsDirs)
		}
		if restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore %s: %w", skills.EnvSkillsDirs, restoreErr)
		}
	}()

	records, err := h.loadUser()
	if err != nil {
		return result, err
	}
	result.SkillCount = len(records)

	mountFiles := countSkillFiles(mountDir)
	switch {
	case mountFiles == 0:
		// Zero results with an empty mount would also be the
		// legitimate no-configuration case; refuse to call it a
		// defect.
		result.Outcome = OutcomeInconclusive
		result.Message = "mount point holds no skill files; cannot distinguish defect from missing configuration"
	case len(records) == 0:
		result.Outcome = OutcomeReproduced
		result.Message = fmt.Sprintf("mount point holds %d skill files but loader returned 0", mountFiles)
		result.Details = append(result.Details,
			fmt.Sprintf("home resolution points at %s while skills are mounted at %s", fakeHome, mountDir))
	default:
		result.Outcome = OutcomeNotReproduced
		result.Message = fmt.Sprintf("loader returned %d skills despite the simulated mismatch", len(records))
	}
	return result, nil
}

// runService exercises the aggregation entry point the agent server
// uses, with every source except the user's disabled.
func (h *Harness) runService() (ScenarioResult, error) {
	result := ScenarioResult{Name: ScenarioService}

	home, err := h.home()
	if err != nil {
		return result, err
	}

	skillsDir := filepath.Join(home, skills.AppDirName, skills.SkillsDirName)
	if _, err := WriteFixtures(skillsDir); err != nil {
		return result, err
	}

	aggregated, err := skillset.LoadAll(skillset.LoadOptions{
		User:     true,
		UserDirs: skills.DefaultUserDirs(home),
	})
	if err != nil {
		return result, err
	}

	userCount := aggregated.Count(skills.SourceUser)
	result.SkillCount = userCount
	for _, sk := range aggregated.Skills {
		result.Details = append(result.Details, describeSkill(sk))
	}

	if userCount > 0 {
		result.Outcome = OutcomePassed
		result.Message = fmt.Sprintf("aggregation returned %d user skills", userCount)
	} else {
		result.Outcome = OutcomeFailed
		result.Message = "aggregation returned no user skills"
	}
	return result, nil
}

// describeDir renders one candidate directory with existence and file
// count, matching the detail lines of the report.
func describeDir(dir string) string {
	files := countSkillFiles(dir)
	_, statErr := os.Stat(dir)
	return fmt.Sprintf("candidate %s (exists=%t, md_files=%d)", dir, statErr == nil, files)
}

// describeSkill renders one loaded record's reported attributes.
func describeSkill(sk skills.Skill) string {
	return fmt.Sprintf("name=%s triggers=[%s] source=%s", sk.Name, strings.Join(sk.Triggers, ", "), sk.Source)
}
