// Package skills provides the directory-scanning skill loader.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
)

const (
	// AppDirName is the OpenHands application directory under the home
	// directory (and under container volume mounts).
	AppDirName = ".openhands"

	// SkillsDirName is the primary skill directory under AppDirName.
	SkillsDirName = "skills"

	// MicroagentsDirName is the legacy skill directory under AppDirName,
	// still scanned for backward compatibility.
	MicroagentsDirName = "microagents"

	// EnvSkillsDirs overrides the candidate directory list. Multiple
	// directories are separated with the platform list separator.
	EnvSkillsDirs = "SKILLSCTL_SKILLS_DIR"
)

// skillFilePattern matches skill files within a candidate directory.
const skillFilePattern = "*.md"

// Loader discovers skills from an explicit, ordered list of candidate
// directories. Directories that do not exist are silently skipped; files
// that fail to parse are logged and skipped. When the same skill name
// appears in more than one directory, the earliest directory wins.
type Loader struct {
	dirs   []string
	source Source
}

// NewLoader creates a loader over the given candidate directories.
//
// Parameters:
//   - source: Source label stamped on every loaded record
//   - dirs: Ordered candidate directories to scan
//
// Returns:
//   - *Loader: The configured loader
func NewLoader(source Source, dirs ...string) *Loader {
	copied := make([]string, len(dirs))
	copy(copied, dirs)
	return &Loader{dirs: copied, source: source}
}

// Dirs returns a copy of the loader's candidate directory list.
func (l *Loader) Dirs() []string {
	out := make([]string, len(l.dirs))
	copy(out, l.dirs)
	return out
}

// Load scans the candidate directories in order and returns all parsed
// skill records.
//
// Returns:
//   - []Skill: Loaded skills, deduplicated by name (first directory wins)
//   - error: If a directory listing fails for a reason other than absence
func (l *Loader) Load() ([]Skill, error) {
	loaded := make([]Skill, 0)
	seen := make(map[string]string)

	for _, dir := range l.dirs {
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Debug("Skill directory does not exist, skipping", "dir", dir)
				continue
			}
			return nil, fmt.Errorf("failed to stat skill directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			log.Warn("Skill path is not a directory, skipping", "path", dir)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(dir, skillFilePattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill directory %s: %w", dir, err)
		}
		sort.Strings(matches)

		for _, path := range matches {
			sk, err := ParseFile(path, l.source)
			if err != nil {
				log.Warn("Skipping unparsable skill file", "path", path, "error", err)
				continue
			}
			if prev, dup := seen[sk.Name]; dup {
				log.Debug("Duplicate skill name, keeping earlier file", "name", sk.Name, "kept", prev, "skipped", path)
				continue
			}
			seen[sk.Name] = path
			loaded = append(loaded, sk)
		}
	}

	return loaded, nil
}

// DefaultUserDirs returns the candidate user skill directories beneath the
// given home directory, in scan order.
//
// Parameters:
//   - home: The home directory to derive candidates from
//
// Returns:
//   - []string: [home/.openhands/skills, home/.openhands/microagents]
func DefaultUserDirs(home string) []string {
	return []string{
		filepath.Join(home, AppDirName, SkillsDirName),
		filepath.Join(home, AppDirName, MicroagentsDirName),
	}
}

// UserDirs resolves the user skill directory list: the EnvSkillsDirs
// environment variable when set, otherwise the defaults beneath the
// resolved home directory.
//
// Returns:
//   - []string: Candidate directories in scan order
//   - error: If no home directory can be resolved
func UserDirs() ([]string, error) {
	if env := os.Getenv(EnvSkillsDirs); env != "" {
		return filepath.SplitList(env), nil
	}

	home, err := ResolveHome()
	if err != nil {
		return nil, err
	}
	return DefaultUserDirs(home), nil
}

// LoadUser loads skills from the resolved user directories with the
// SourceUser label.
//
// Returns:
//   - []Skill: Loaded user skills
//   - error: If home resolution or directory scanning fails
func LoadUser() ([]Skill, error) {
	dirs, err := UserDirs()
	if err != nil {
		return nil, err
	}
	return NewLoader(SourceUser, dirs...).Load()
}

// ResolveHome returns the current user's home directory.
//
// Falls back to platform environment variables when os.UserHomeDir
// fails. Inside containers this is exactly the value that can diverge
// from the volume mount point; see the repro harness.
//
// Returns:
//   - string: The home directory
//   - error: If no home directory can be determined
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}

	// Fallback for edge cases
	if runtime.GOOS == "windows" {
		if v := os.Getenv("USERPROFILE"); v != "" {
			return v, nil
		}
	} else if v := os.Getenv("HOME"); v != "" {
		return v, nil
	}

	return "", fmt.Errorf("unable to resolve home directory: %w", err)
}
