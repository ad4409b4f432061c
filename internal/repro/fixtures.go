// Package repro implements the skill path-mismatch reproduction harness.
//
// The harness reproduces the deployment defect where user skills fail to
// load inside a container: the home directory the process resolves does
// not coincide with the volume mount point that actually holds the
// skill files, so the derived candidate directories are empty and the
// loader returns nothing.
package repro

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixture is one test skill written by the harness.
type Fixture struct {
	// FileName is the file name within the skills directory.
	FileName string

	// Name is the skill name declared in the frontmatter.
	Name string

	// Triggers are the trigger phrases declared in the frontmatter,
	// empty for the fixture exercising the optional-field path.
	Triggers []string

	content string
}

// fixtures are the three skills every scenario materializes: two with
// trigger lists and one without any triggers field.
var fixtures = []Fixture{
	{
		FileName: "deepsolve.md",
		Name:     "deepsolve",
		Triggers: []string{"deep-solve", "analysis"},
		content: `---
name: deepsolve
triggers:
  - deep-solve
  - analysis
---

# Deep Solve Skill

A test user skill for deep analysis.
`,
	},
	{
		FileName: "eda.md",
		Name:     "eda",
		Triggers: []string{"eda", "explore-data"},
		content: `---
name: eda
triggers:
  - eda
  - explore-data
---

# EDA Skill

A test user skill for exploratory data analysis.
`,
	},
	{
		FileName: "checkpoint.md",
		Name:     "checkpoint",
		Triggers: []string{},
		content: `---
name: checkpoint
---

# Checkpoint Skill

A test user skill for checkpointing.
`,
	},
}

// Fixtures returns a copy of the fixture definitions.
func Fixtures() []Fixture {
	out := make([]Fixture, len(fixtures))
	copy(out, fixtures)
	return out
}

// WriteFixtures writes the three test skills into dir, creating the
// directory and its parents as needed. Existing files are overwritten,
// so repeated calls are idempotent.
//
// Parameters:
//   - dir: The target skills directory
//
// Returns:
//   - []string: Paths of the written files, in fixture order
//   - error: If the directory or any file cannot be written
func WriteFixtures(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create skills directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(fixtures))
	for _, fx := range fixtures {
		path := filepath.Join(dir, fx.FileName)
		if err := os.WriteFile(path, []byte(fx.content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write fixture %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// countSkillFiles returns the number of skill files directly in dir,
// zero when the directory does not exist.
func countSkillFiles(dir string) int {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return 0
	}
	return len(matches)
}
