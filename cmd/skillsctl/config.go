// Package main provides the config command for pinning skill directories.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reisepass/skillsctl/internal/config"
	"github.com/reisepass/skillsctl/internal/skills"
	"github.com/reisepass/skillsctl/internal/ui"
)

var configFilePath string

// configCmd is the parent command for configuration management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the skillsctl configuration file",
	Long: `Manage the ~/.openhands/config.yaml configuration file.

Pinning skills_dirs is the durable fix when the default home-derived
candidates do not match the deployment, such as containers where skills
are volume-mounted outside the resolved home directory.

EXAMPLES:
  skillsctl config show
  skillsctl config set-skills-dirs /.openhands/skills
  skillsctl config set-skills-dirs ~/.openhands/skills /mnt/org/skills`,
}

// configShowCmd prints the configuration and the effective directory list.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configuration and the effective skill directories",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configSetSkillsDirsCmd pins the candidate skill directory list.
var configSetSkillsDirsCmd = &cobra.Command{
	Use:   "set-skills-dirs <dir> [dir...]",
	Short: "Pin the skill directories the loader scans",
	Long: `Pin the candidate skill directory list in the configuration file.

The pinned list replaces the default home-derived candidates. The
` + skills.EnvSkillsDirs + ` environment variable still wins over the
pinned list when set.

EXAMPLES:
  skillsctl config set-skills-dirs /.openhands/skills
  skillsctl config set-skills-dirs ~/.openhands/skills /mnt/org/skills`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConfigSetSkillsDirs,
}

func init() {
	configCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Configuration file path (default ~/.openhands/config.yaml)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSkillsDirsCmd)
}

// resolveConfigPath returns the configuration file path, honoring the
// --config flag.
func resolveConfigPath() (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return config.DefaultPath()
}

// runConfigShow prints the configuration file contents and the
// directory list the loader would actually scan.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Unused
//
// Returns:
//   - error: If the config cannot be loaded or resolved
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	ui.PrintInfo("Config file: %s", path)
	if len(cfg.SkillsDirs) > 0 {
		fmt.Println("skills_dirs:")
		for _, dir := range cfg.SkillsDirs {
			fmt.Printf("  - %s\n", dir)
		}
	} else {
		ui.PrintDim("skills_dirs: (not pinned, using defaults)")
	}
	if cfg.Org.RepoURL != "" {
		fmt.Printf("org: %s (%s)\n", cfg.Org.Name, cfg.Org.RepoURL)
	}

	effective, err := config.ResolveSkillsDirs(cfg)
	if err != nil {
		return err
	}
	if env := os.Getenv(skills.EnvSkillsDirs); env != "" {
		ui.PrintWarning("%s is set and overrides the file: %s", skills.EnvSkillsDirs, env)
	}
	fmt.Println("Effective scan order:")
	for _, dir := range effective {
		fmt.Printf("  - %s\n", dir)
	}
	return nil
}

// runConfigSetSkillsDirs pins the given directories in the config file.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: The directories to pin, in scan order
//
// Returns:
//   - error: If the config cannot be loaded or saved
func runConfigSetSkillsDirs(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err := pinSkillsDirs(path, args); err != nil {
		return err
	}

	ui.PrintSuccess("Pinned %d skill dir(s) in %s", len(args), path)
	ui.PrintDim("  %s", strings.Join(args, string(os.PathListSeparator)))
	return nil
}

// pinSkillsDirs rewrites skills_dirs in the config file at path,
// preserving the other settings.
//
// Parameters:
//   - path: The config file path
//   - dirs: The directories to pin, in scan order
//
// Returns:
//   - error: If the config cannot be loaded or saved
func pinSkillsDirs(path string, dirs []string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	cfg.SkillsDirs = make([]string, len(dirs))
	copy(cfg.SkillsDirs, dirs)

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
