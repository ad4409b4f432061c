// Package skillset aggregates skills across configured sources.
//
// This is the layer the agent server calls when it needs the full skill
// inventory: public starter skills, the user's home skills, project
// skills, and (when configured) organization skills, combined into one
// sequence with per-source counts.
package skillset

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/reisepass/skillsctl/internal/catalog"
	"github.com/reisepass/skillsctl/internal/skills"
)

// LoadOptions selects which sources to aggregate and where to find them.
type LoadOptions struct {
	// Public includes the embedded starter catalog.
	Public bool

	// User includes the user's home skill directories.
	User bool

	// Project includes skills beneath ProjectDir/.openhands/skills.
	Project bool

	// Org includes organization skills (requires OrgRepoURL).
	Org bool

	// UserDirs overrides the user candidate directories. When empty,
	// the resolved defaults are used.
	UserDirs []string

	// ProjectDir is the project root for the project source.
	ProjectDir string

	// OrgRepoURL is the git repository holding organization skills.
	OrgRepoURL string

	// OrgName is the organization name used for reporting.
	OrgName string
}

// Result is the aggregated outcome of a LoadAll call.
type Result struct {
	// Sources maps each requested source name to its record count.
	Sources map[string]int `json:"sources"`

	// Skills is the combined record sequence in source order.
	Skills []skills.Skill `json:"skills"`
}

// LoadAll aggregates skills from all requested sources.
//
// Sources are loaded in fixed order (public, user, project, org) and
// each requested source always appears in Result.Sources, with a zero
// count when it yielded nothing.
//
// Parameters:
//   - opts: Source selection and locations
//
// Returns:
//   - *Result: Per-source counts and the combined record sequence
//   - error: If a requested source fails to load
func LoadAll(opts LoadOptions) (*Result, error) {
	result := &Result{
		Sources: make(map[string]int),
		Skills:  make([]skills.Skill, 0),
	}

	if opts.Public {
		records := catalog.Records()
		result.Sources[string(skills.SourcePublic)] = len(records)
		result.Skills = append(result.Skills, records...)
	}

	if opts.User {
		dirs := opts.UserDirs
		if len(dirs) == 0 {
			resolved, err := skills.UserDirs()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve user skill directories: %w", err)
			}
			dirs = resolved
		}

		records, err := skills.NewLoader(skills.SourceUser, dirs...).Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load user skills: %w", err)
		}
		result.Sources[string(skills.SourceUser)] = len(records)
		result.Skills = append(result.Skills, records...)
	}

	if opts.Project {
		var records []skills.Skill
		if opts.ProjectDir == "" {
			log.Debug("Project source requested without a project directory")
		} else {
			dir := filepath.Join(opts.ProjectDir, skills.AppDirName, skills.SkillsDirName)
			loaded, err := skills.NewLoader(skills.SourceProject, dir).Load()
			if err != nil {
				return nil, fmt.Errorf("failed to load project skills: %w", err)
			}
			records = loaded
		}
		result.Sources[string(skills.SourceProject)] = len(records)
		result.Skills = append(result.Skills, records...)
	}

	if opts.Org {
		// Org skills require cloning OrgRepoURL, which this tool never
		// does on its own; the source is reported with a zero count
		// until a sync has materialized the repo locally.
		if opts.OrgRepoURL == "" {
			log.Debug("Org source requested without a repository URL")
		} else {
			log.Warn("Org skill sync is not performed by skillsctl", "repo", opts.OrgRepoURL, "org", opts.OrgName)
		}
		result.Sources[string(skills.SourceOrg)] = 0
	}

	return result, nil
}

// Count returns the number of records attributed to the given source.
//
// Parameters:
//   - source: The source label
//
// Returns:
//   - int: The count, zero when the source was not loaded
func (r *Result) Count(source skills.Source) int {
	return r.Sources[string(source)]
}
