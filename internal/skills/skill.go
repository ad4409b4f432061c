// Package skills provides discovery and parsing of OpenHands skill files.
//
// A skill is a markdown file with a YAML frontmatter header carrying at
// minimum a name, optionally a description and a list of trigger phrases.
// Skills are discovered by scanning an ordered list of candidate
// directories; the list is always passed in explicitly so that callers
// (and tests) control path resolution instead of a process-wide global.
package skills

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source identifies which configured origin a skill was loaded from.
type Source string

const (
	// SourceUser marks skills from the user's home skill directories.
	SourceUser Source = "user"

	// SourcePublic marks skills from the embedded starter catalog.
	SourcePublic Source = "public"

	// SourceProject marks skills from a project's .openhands directory.
	SourceProject Source = "project"

	// SourceOrg marks skills synced from an organization repository.
	SourceOrg Source = "org"
)

// Skill is a single loaded skill record.
type Skill struct {
	// Name is the unique skill name from the frontmatter.
	Name string `json:"name"`

	// Description is an optional one-line summary from the frontmatter.
	Description string `json:"description,omitempty"`

	// Triggers are optional phrases that activate the skill. Empty,
	// never nil, when the frontmatter omits the triggers field.
	Triggers []string `json:"triggers"`

	// Source labels which origin the skill was loaded from.
	Source Source `json:"source"`

	// Path is the file the skill was parsed from. Empty for embedded
	// catalog skills.
	Path string `json:"path,omitempty"`

	// Content is the markdown body following the frontmatter.
	Content string `json:"-"`
}

// frontmatter is the YAML header of a skill file.
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Triggers    []string `yaml:"triggers,omitempty"`
}

// frontmatterDelimiter separates the YAML header from the markdown body.
const frontmatterDelimiter = "---"

// Parse parses raw skill file content into a Skill.
//
// The content must start with a frontmatter block delimited by "---"
// lines. The frontmatter must declare a non-empty name. A missing
// triggers field yields an empty (not nil) trigger list.
//
// Parameters:
//   - content: Raw file content
//   - source: Source label to stamp on the record
//
// Returns:
//   - Skill: The parsed skill
//   - error: If the frontmatter is missing, malformed, or unnamed
func Parse(content string, source Source) (Skill, error) {
	header, body, err := splitFrontmatter(content)
	if err != nil {
		return Skill{}, err
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return Skill{}, fmt.Errorf("invalid frontmatter: %w", err)
	}

	if strings.TrimSpace(fm.Name) == "" {
		return Skill{}, fmt.Errorf("frontmatter is missing required field: name")
	}

	triggers := fm.Triggers
	if triggers == nil {
		triggers = []string{}
	}

	return Skill{
		Name:        strings.TrimSpace(fm.Name),
		Description: strings.TrimSpace(fm.Description),
		Triggers:    triggers,
		Source:      source,
		Content:     strings.TrimSpace(body),
	}, nil
}

// ParseFile reads and parses a skill file from disk.
//
// Parameters:
//   - path: The skill file path
//   - source: Source label to stamp on the record
//
// Returns:
//   - Skill: The parsed skill with Path set
//   - error: If the file cannot be read or parsed
func ParseFile(path string, source Source) (Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, fmt.Errorf("failed to read skill file: %w", err)
	}

	sk, err := Parse(string(data), source)
	if err != nil {
		return Skill{}, fmt.Errorf("%s: %w", path, err)
	}

	sk.Path = path
	return sk, nil
}

// splitFrontmatter splits raw content into the YAML header and the body.
func splitFrontmatter(content string) (header, body string, err error) {
	trimmed := strings.TrimLeft(content, "\n\r\t ")
	if !strings.HasPrefix(trimmed, frontmatterDelimiter+"\n") && trimmed != frontmatterDelimiter {
		return "", "", fmt.Errorf("missing frontmatter header")
	}

	rest := strings.TrimPrefix(trimmed, frontmatterDelimiter+"\n")
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx < 0 {
		return "", "", fmt.Errorf("unterminated frontmatter header")
	}

	header = rest[:idx]
	body = rest[idx+len("\n"+frontmatterDelimiter):]
	// Swallow the newline that closes the delimiter line, if present.
	body = strings.TrimPrefix(body, "\n")
	return header, body, nil
}
