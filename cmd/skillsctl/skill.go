// Package main provides the skills command for managing starter skills.
//
// Starter skills are embedded in the binary at compile time and can be
// installed into the user's skill directory, where the loader discovers
// them like any hand-written skill.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reisepass/skillsctl/internal/catalog"
	"github.com/reisepass/skillsctl/internal/skills"
	"github.com/reisepass/skillsctl/internal/ui"
)

var (
	skillExportOutput string
	skillInstallDir   string
	skillInstallForce bool
)

// skillsCmd is the parent command for starter skill management.
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the embedded starter skills",
	Long: `Manage the starter skills embedded in the skillsctl binary.

Starter skills cover common agent workflows (skill authoring, repo
exploration, commit hygiene). They are compiled into the binary and
can be installed into ~/.openhands/skills without network access.

EXAMPLES:
  skillsctl skills list                  # List embedded starter skills
  skillsctl skills show skill-authoring  # Print one to stdout
  skillsctl skills export skill-authoring -o SKILL.md
  skillsctl skills install               # Install all starter skills
  skillsctl skills install repo-exploration --force`,
}

// skillsListCmd lists the embedded starter skills.
var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the embedded starter skills",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintTableHeader("NAME", "DESCRIPTION")
		for _, sk := range catalog.All() {
			ui.PrintTableRow(sk.Name, sk.Description)
		}
	},
}

// skillsShowCmd prints one embedded starter skill to stdout.
var skillsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a starter skill to stdout",
	Long: `Print one embedded starter skill to stdout.

Useful for piping into other tools or inspecting the content without
installing it.

EXAMPLES:
  skillsctl skills show skill-authoring
  skillsctl skills show commit-hygiene > SKILL.md`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsShow,
}

// skillsExportCmd writes one embedded starter skill to a file.
var skillsExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a starter skill to a file",
	Long: `Export one embedded starter skill to a file on disk.

If no output path is specified, writes to ./<name>.md in the current
directory.

EXAMPLES:
  skillsctl skills export skill-authoring
  skillsctl skills export skill-authoring -o skills/authoring.md`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsExport,
}

// skillsInstallCmd installs starter skills into the user skill directory.
var skillsInstallCmd = &cobra.Command{
	Use:   "install [names...]",
	Short: "Install starter skills into the user skill directory",
	Long: `Install embedded starter skills into the user skill directory
(~/.openhands/skills by default), where the loader discovers them like
any hand-written skill.

Without arguments, installs every starter skill. Existing files are
left alone unless --force is given.

EXAMPLES:
  skillsctl skills install                       # Install all
  skillsctl skills install repo-exploration      # Install one
  skillsctl skills install --dir /mnt/.openhands/skills
  skillsctl skills install --force               # Overwrite existing`,
	RunE: runSkillsInstall,
}

func init() {
	skillsExportCmd.Flags().StringVarP(&skillExportOutput, "output", "o", "", "Output file path (default ./<name>.md)")

	skillsInstallCmd.Flags().StringVar(&skillInstallDir, "dir", "", "Target directory (default ~/.openhands/skills)")
	skillsInstallCmd.Flags().BoolVar(&skillInstallForce, "force", false, "Overwrite existing skill files")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.AddCommand(skillsExportCmd)
	skillsCmd.AddCommand(skillsInstallCmd)
}

// runSkillsShow prints the named starter skill to stdout.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: args[0] is the starter skill name
//
// Returns:
//   - error: If the name is unknown
func runSkillsShow(cmd *cobra.Command, args []string) error {
	sk, ok := catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown starter skill %q (valid: %s)", args[0], strings.Join(catalog.Names(), ", "))
	}
	fmt.Print(sk.Content)
	return nil
}

// runSkillsExport writes the named starter skill to a file on disk.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: args[0] is the starter skill name
//
// Returns:
//   - error: If the name is unknown or the file cannot be written
func runSkillsExport(cmd *cobra.Command, args []string) error {
	sk, ok := catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown starter skill %q (valid: %s)", args[0], strings.Join(catalog.Names(), ", "))
	}

	outputPath := skillExportOutput
	if outputPath == "" {
		outputPath = sk.Name + ".md"
	}

	dir := filepath.Dir(outputPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(sk.Content), 0644); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	ui.PrintSuccess("Exported %s to %s", sk.Name, outputPath)
	return nil
}

// runSkillsInstall installs the selected starter skills.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Optional starter skill names; empty means all
//
// Returns:
//   - error: If a name is unknown or every installation failed
func runSkillsInstall(cmd *cobra.Command, args []string) error {
	selected, err := resolveInstallSkills(args)
	if err != nil {
		return err
	}

	targetDir := skillInstallDir
	if targetDir == "" {
		home, err := skills.ResolveHome()
		if err != nil {
			return err
		}
		targetDir = filepath.Join(home, skills.AppDirName, skills.SkillsDirName)
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", targetDir, err)
	}

	var installed, skipped []string
	for _, sk := range selected {
		path := filepath.Join(targetDir, sk.Name+".md")
		if !skillInstallForce {
			if _, err := os.Stat(path); err == nil {
				skipped = append(skipped, path)
				continue
			}
		}
		if err := os.WriteFile(path, []byte(sk.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		installed = append(installed, path)
	}

	if len(installed) > 0 {
		ui.PrintSuccess("Installed %d starter skill(s) to %s", len(installed), targetDir)
		for _, path := range installed {
			ui.PrintDim("  %s", path)
		}
	}
	for _, path := range skipped {
		ui.PrintDim("  Already installed at %s (use --force to overwrite)", path)
	}

	return nil
}

// resolveInstallSkills maps the requested names to catalog entries;
// with no names, every starter skill is selected.
//
// Parameters:
//   - names: Requested starter skill names, may be empty
//
// Returns:
//   - []catalog.Skill: The selected skills
//   - error: If any name is unknown
func resolveInstallSkills(names []string) ([]catalog.Skill, error) {
	if len(names) == 0 {
		return catalog.All(), nil
	}

	selected := make([]catalog.Skill, 0, len(names))
	for _, name := range names {
		sk, ok := catalog.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown starter skill %q (valid: %s)", name, strings.Join(catalog.Names(), ", "))
		}
		selected = append(selected, sk)
	}
	return selected, nil
}
