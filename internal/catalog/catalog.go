// Package catalog exposes the starter skills embedded in the binary.
//
// Starter skills are compiled in via go:embed so that every distribution
// channel can install them without network access. They double as the
// "public" skill source for aggregation, standing in for the hosted
// public catalog.
package catalog

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/reisepass/skillsctl/internal/skills"
	embedded "github.com/reisepass/skillsctl/skills"
)

// Skill describes one installable starter skill.
type Skill struct {
	Name        string
	Description string
	Content     string
}

var catalog = []Skill{
	{
		Name:        embedded.SkillAuthoringName,
		Description: "How to write OpenHands skill files that load reliably and trigger at the right moments.",
		Content:     embedded.SkillAuthoringContent,
	},
	{
		Name:        embedded.RepoExplorationName,
		Description: "Systematic exploration sequence for building a mental model of an unfamiliar repository.",
		Content:     embedded.RepoExplorationContent,
	},
	{
		Name:        embedded.CommitHygieneName,
		Description: "Conventions that keep agent-produced commits small, described, and revertable.",
		Content:     embedded.CommitHygieneContent,
	},
}

// All returns a copy of all embedded starter skills in deterministic
// install order.
func All() []Skill {
	out := make([]Skill, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns all valid starter skill names in deterministic order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, sk := range catalog {
		names = append(names, sk.Name)
	}
	return names
}

// Get returns one starter skill by exact name.
func Get(name string) (Skill, bool) {
	name = strings.TrimSpace(name)
	for _, sk := range catalog {
		if sk.Name == name {
			return sk, true
		}
	}
	return Skill{}, false
}

// Records parses the embedded starter skills into loadable records with
// the public source label. An embedded entry that fails to parse is
// logged and skipped.
func Records() []skills.Skill {
	records := make([]skills.Skill, 0, len(catalog))
	for _, entry := range catalog {
		sk, err := skills.Parse(entry.Content, skills.SourcePublic)
		if err != nil {
			log.Warn("Embedded starter skill failed to parse", "name", entry.Name, "error", err)
			continue
		}
		records = append(records, sk)
	}
	return records
}
