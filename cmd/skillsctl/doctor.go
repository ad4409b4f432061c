// Package main provides the doctor command for skill-loading diagnostics.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reisepass/skillsctl/internal/config"
	"github.com/reisepass/skillsctl/internal/skills"
	"github.com/reisepass/skillsctl/internal/ui"
)

// DoctorCheck represents a single diagnostic check result.
type DoctorCheck struct {
	// Name is the check name (e.g., "Home resolution").
	Name string `json:"name"`

	// Status is the check status: "ok", "warning", "error".
	Status string `json:"status"`

	// Message is the human-readable result message.
	Message string `json:"message"`

	// Details contains additional information (optional).
	Details string `json:"details,omitempty"`
}

// DoctorResult contains all diagnostic check results.
type DoctorResult struct {
	// Checks contains all individual check results.
	Checks []DoctorCheck `json:"checks"`

	// Issues is the count of checks with status "error" or "warning".
	Issues int `json:"issues"`

	// Healthy is true if no errors were found.
	Healthy bool `json:"healthy"`
}

var doctorOutputJSON bool

// containerMountRoot is where the user's .openhands directory lands
// inside agent containers. Skills sitting here while the home-derived
// candidates are empty is the signature of the path-mismatch defect.
const containerMountRoot = "/" + skills.AppDirName

// doctorCmd runs diagnostic checks on skill loading.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose why skills are not loading",
	Long: `Run diagnostic checks on skill discovery and loading.

CHECKS PERFORMED:
  - Home directory resolution
  - Configuration file (~/.openhands/config.yaml parses?)
  - Candidate skill directories (existence and file counts)
  - Container mount mismatch (skills mounted outside the home path?)
  - Skill file validity (frontmatter parses, names well-formed?)

OUTPUT:
  Human-readable by default, JSON with --json flag.

EXAMPLES:
  skillsctl doctor              # Run all checks
  skillsctl doctor --json       # Output as JSON for scripting`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorOutputJSON, "json", false, "Output results as JSON")
}

// runDoctor executes all diagnostic checks.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Non-nil when any check reported an error
func runDoctor(cmd *cobra.Command, args []string) error {
	jsonOutput := doctorOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}

	result := DoctorResult{
		Checks:  make([]DoctorCheck, 0),
		Healthy: true,
	}

	if !jsonOutput {
		ui.PrintBanner(version)
		ui.PrintInfo("Running skill-loading diagnostics...")
		ui.Println()
	}

	record := func(check DoctorCheck) {
		result.Checks = append(result.Checks, check)
		switch check.Status {
		case "error":
			result.Healthy = false
			result.Issues++
		case "warning":
			result.Issues++
		}
	}

	homeCheck, home := checkHomeResolution()
	record(homeCheck)

	cfgCheck, dirs := checkConfiguration(home)
	record(cfgCheck)

	record(checkCandidateDirs(dirs))
	record(checkMountMismatch(dirs))
	record(checkSkillFiles(dirs))

	if jsonOutput {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
	} else {
		printDoctorResults(result)
	}

	if !result.Healthy {
		return fmt.Errorf("skill-loading check failed")
	}
	return nil
}

// checkHomeResolution verifies the home directory resolves.
//
// Returns:
//   - DoctorCheck: The check result
//   - string: The resolved home, empty on failure
func checkHomeResolution() (DoctorCheck, string) {
	home, err := skills.ResolveHome()
	if err != nil {
		return DoctorCheck{
			Name:    "Home resolution",
			Status:  "error",
			Message: "Could not resolve a home directory",
			Details: err.Error(),
		}, ""
	}
	return DoctorCheck{
		Name:    "Home resolution",
		Status:  "ok",
		Message: home,
	}, home
}

// checkConfiguration loads the config file and resolves the candidate
// directory list.
//
// Parameters:
//   - home: The resolved home directory, may be empty
//
// Returns:
//   - DoctorCheck: The check result
//   - []string: The resolved candidate directories
func checkConfiguration(home string) (DoctorCheck, []string) {
	if home == "" {
		return DoctorCheck{
			Name:    "Configuration",
			Status:  "warning",
			Message: "Skipped: no home directory",
		}, nil
	}

	path := filepath.Join(home, skills.AppDirName, config.FileName)
	cfg, err := config.Load(path)
	if err != nil {
		// Fall back to defaults so later checks still run.
		return DoctorCheck{
			Name:    "Configuration",
			Status:  "error",
			Message: fmt.Sprintf("%s is invalid", path),
			Details: err.Error(),
		}, skills.DefaultUserDirs(home)
	}

	dirs, err := config.ResolveSkillsDirs(cfg)
	if err != nil {
		return DoctorCheck{
			Name:    "Configuration",
			Status:  "error",
			Message: "Could not resolve skill directories",
			Details: err.Error(),
		}, nil
	}

	source := "defaults"
	if os.Getenv(skills.EnvSkillsDirs) != "" {
		source = skills.EnvSkillsDirs
	} else if len(cfg.SkillsDirs) > 0 {
		source = path
	}
	return DoctorCheck{
		Name:    "Configuration",
		Status:  "ok",
		Message: fmt.Sprintf("%d candidate directories (from %s)", len(dirs), source),
	}, dirs
}

// checkCandidateDirs reports existence and file counts for each
// candidate directory.
//
// Parameters:
//   - dirs: The candidate directories
//
// Returns:
//   - DoctorCheck: The check result
func checkCandidateDirs(dirs []string) DoctorCheck {
	if len(dirs) == 0 {
		return DoctorCheck{
			Name:    "Skill directories",
			Status:  "warning",
			Message: "No candidate directories to scan",
		}
	}

	var lines []string
	existing, files := 0, 0
	for _, dir := range dirs {
		count := len(globSkillFiles(dir))
		_, statErr := os.Stat(dir)
		exists := statErr == nil
		if exists {
			existing++
		}
		files += count
		lines = append(lines, fmt.Sprintf("%s (exists=%t, md_files=%d)", dir, exists, count))
	}

	status := "ok"
	message := fmt.Sprintf("%d skill files across %d directories", files, existing)
	if existing == 0 {
		status = "warning"
		message = "None of the candidate directories exist"
	} else if files == 0 {
		status = "warning"
		message = "Candidate directories exist but hold no skill files"
	}

	return DoctorCheck{
		Name:    "Skill directories",
		Status:  status,
		Message: message,
		Details: strings.Join(lines, "\n"),
	}
}

// checkMountMismatch detects the container defect signature: skill
// files present under the container mount root while every home-derived
// candidate directory is empty.
//
// Parameters:
//   - dirs: The candidate directories the loader will scan
//
// Returns:
//   - DoctorCheck: The check result
func checkMountMismatch(dirs []string) DoctorCheck {
	return checkMountMismatchAt(filepath.Join(containerMountRoot, skills.SkillsDirName), dirs)
}

// checkMountMismatchAt is checkMountMismatch with an explicit mount
// directory.
func checkMountMismatchAt(mountDir string, dirs []string) DoctorCheck {
	mounted := len(globSkillFiles(mountDir))
	if mounted == 0 {
		return DoctorCheck{
			Name:    "Container mount",
			Status:  "ok",
			Message: fmt.Sprintf("No skills at %s", mountDir),
		}
	}

	candidateFiles := 0
	scansMount := false
	for _, dir := range dirs {
		candidateFiles += len(globSkillFiles(dir))
		if dir == mountDir {
			scansMount = true
		}
	}

	if candidateFiles == 0 && !scansMount {
		return DoctorCheck{
			Name:    "Container mount",
			Status:  "error",
			Message: fmt.Sprintf("%d skills at %s but the loader never scans it", mounted, mountDir),
			Details: fmt.Sprintf("Set %s=%s or run `skillsctl config set-skills-dirs %s`.", skills.EnvSkillsDirs, mountDir, mountDir),
		}
	}

	return DoctorCheck{
		Name:    "Container mount",
		Status:  "ok",
		Message: fmt.Sprintf("%d skills at %s, and the loader can see skills", mounted, mountDir),
	}
}

// checkSkillFiles validates every skill file in the candidate dirs.
//
// Parameters:
//   - dirs: The candidate directories
//
// Returns:
//   - DoctorCheck: The check result
func checkSkillFiles(dirs []string) DoctorCheck {
	var problems []string
	checked := 0

	for _, dir := range dirs {
		for _, path := range globSkillFiles(dir) {
			checked++
			data, err := os.ReadFile(path)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", path, err))
				continue
			}
			if result := skills.ValidateContent(string(data)); !result.Valid {
				problems = append(problems, fmt.Sprintf("%s: %s", path, strings.Join(result.Errors, "; ")))
			}
		}
	}

	if len(problems) > 0 {
		return DoctorCheck{
			Name:    "Skill files",
			Status:  "error",
			Message: fmt.Sprintf("%d of %d skill files are invalid", len(problems), checked),
			Details: strings.Join(problems, "\n"),
		}
	}

	return DoctorCheck{
		Name:    "Skill files",
		Status:  "ok",
		Message: fmt.Sprintf("%d skill files parse cleanly", checked),
	}
}

// globSkillFiles lists the markdown files directly in dir, empty when
// the directory does not exist.
func globSkillFiles(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil
	}
	return matches
}

// printDoctorResults prints the human-readable check list.
//
// Parameters:
//   - result: The collected check results
func printDoctorResults(result DoctorResult) {
	for _, check := range result.Checks {
		var icon string
		switch check.Status {
		case "ok":
			icon = ui.StatusPassedStyle.Render("✓")
		case "warning":
			icon = ui.StatusWarnStyle.Render("⚠")
		default:
			icon = ui.StatusFailedStyle.Render("✗")
		}

		fmt.Printf("%s %s: %s\n", icon, check.Name, check.Message)
		if check.Details != "" {
			for _, line := range strings.Split(check.Details, "\n") {
				ui.PrintDim("    %s", line)
			}
		}
	}

	ui.Println()
	if result.Healthy {
		ui.PrintSuccess("No blocking issues found (%d warnings)", result.Issues)
	} else {
		ui.PrintError("Found %d issue(s)", result.Issues)
	}
}
