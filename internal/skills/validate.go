// Package skills provides skill file validation.
package skills

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationResult contains the result of skill file validation.
//
// Fields:
//   - Valid: Whether the skill file is valid
//   - Errors: List of validation errors
//   - Warnings: List of validation warnings (non-fatal issues)
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// namePattern matches valid skill names: lowercase, digits, hyphens.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateContent validates raw skill file content.
//
// This function checks:
//   - Frontmatter presence and YAML syntax validity
//   - Required name field and its format
//   - Trigger list entries (no empty or duplicate triggers)
//   - Non-empty markdown body (warning only)
//
// Parameters:
//   - content: The skill file content as a string
//
// Returns:
//   - *ValidationResult: Validation result with errors/warnings
func ValidateContent(content string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	header, body, err := splitFrontmatter(content)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("YAML parse error: %v", err))
		return result
	}

	name := strings.TrimSpace(fm.Name)
	if name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	} else if !namePattern.MatchString(name) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid name '%s': must be lowercase letters, digits, and hyphens", name))
	}

	seen := make(map[string]bool)
	for i, trigger := range fm.Triggers {
		t := strings.TrimSpace(trigger)
		if t == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Trigger %d is empty", i+1))
			continue
		}
		if seen[t] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Duplicate trigger '%s'", t))
		}
		seen[t] = true
	}

	if strings.TrimSpace(body) == "" {
		result.Warnings = append(result.Warnings, "Skill has no body content")
	}

	return result
}
