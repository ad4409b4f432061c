// Package config provides CLI configuration management.
//
// This package handles reading and writing the ~/.openhands/config.yaml
// file, the one place users can pin skill directories when the default
// home-derived candidates do not match their deployment (containers with
// volume mounts being the usual case).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reisepass/skillsctl/internal/skills"
)

// FileName is the configuration file name under the application directory.
const FileName = "config.yaml"

// Config represents the ~/.openhands/config.yaml file.
type Config struct {
	// SkillsDirs overrides the candidate skill directory list. When
	// empty, the defaults beneath the resolved home directory are used.
	SkillsDirs []string `yaml:"skills_dirs,omitempty"`

	// Org contains organization skill source settings.
	Org OrgConfig `yaml:"org,omitempty"`
}

// OrgConfig contains settings for the organization skill source.
type OrgConfig struct {
	// RepoURL is the git repository holding organization skills.
	RepoURL string `yaml:"repo_url,omitempty"`

	// Name is the organization name used for reporting.
	Name string `yaml:"name,omitempty"`
}

// DefaultPath returns the default configuration file path beneath the
// resolved home directory.
//
// Returns:
//   - string: The config file path
//   - error: If no home directory can be resolved
func DefaultPath() (string, error) {
	home, err := skills.ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, skills.AppDirName, FileName), nil
}

// Load reads and parses a config file. A missing file is not an error;
// it yields the zero configuration.
//
// Parameters:
//   - path: The config file path
//
// Returns:
//   - *Config: The parsed (or zero) configuration
//   - error: If the file exists but cannot be read or parsed
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
//
// Parameters:
//   - path: The config file path
//   - cfg: The configuration to write
//
// Returns:
//   - error: If marshalling or writing fails
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveSkillsDirs resolves the user skill directory list with
// precedence: environment variable, then config file, then the defaults
// beneath the resolved home directory.
//
// Parameters:
//   - cfg: The loaded configuration (may be the zero config)
//
// Returns:
//   - []string: Candidate directories in scan order
//   - error: If no home directory can be resolved when defaults apply
func ResolveSkillsDirs(cfg *Config) ([]string, error) {
	if env := os.Getenv(skills.EnvSkillsDirs); env != "" {
		return filepath.SplitList(env), nil
	}

	if cfg != nil && len(cfg.SkillsDirs) > 0 {
		out := make([]string, len(cfg.SkillsDirs))
		copy(out, cfg.SkillsDirs)
		return out, nil
	}

	home, err := skills.ResolveHome()
	if err != nil {
		return nil, err
	}
	return skills.DefaultUserDirs(home), nil
}
