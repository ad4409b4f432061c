// Package main provides the list command.
package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reisepass/skillsctl/internal/config"
	"github.com/reisepass/skillsctl/internal/skillset"
	"github.com/reisepass/skillsctl/internal/ui"
)

var (
	listOutputJSON bool
	listPublic     bool
	listUser       bool
	listProject    bool
	listOrg        bool
	listProjectDir string
)

// listCmd lists skills from the configured sources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills from every configured source",
	Long: `List skills aggregated across the configured sources.

By default only the user source (~/.openhands/skills and the legacy
~/.openhands/microagents) is loaded. Additional sources are enabled
with flags.

The user directory list honors the ` + "`skills_dirs`" + ` setting in
~/.openhands/config.yaml and the SKILLSCTL_SKILLS_DIR environment
variable.

EXAMPLES:
  skillsctl list                     # User skills only
  skillsctl list --public            # Plus embedded starter skills
  skillsctl list --project --project-dir .   # Plus project skills
  skillsctl list --json              # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listOutputJSON, "json", false, "Output results as JSON")
	listCmd.Flags().BoolVar(&listPublic, "public", false, "Include embedded starter skills")
	listCmd.Flags().BoolVar(&listUser, "user", true, "Include user skills")
	listCmd.Flags().BoolVar(&listProject, "project", false, "Include project skills")
	listCmd.Flags().BoolVar(&listOrg, "org", false, "Include organization skills")
	listCmd.Flags().StringVar(&listProjectDir, "project-dir", ".", "Project root for the project source")
}

// runList aggregates and prints skills from the selected sources.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command arguments (unused, validated as empty by cobra)
//
// Returns:
//   - error: If configuration loading or aggregation fails
func runList(cmd *cobra.Command, args []string) error {
	jsonOutput := listOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}

	opts := skillset.LoadOptions{
		Public:     listPublic,
		User:       listUser,
		Project:    listProject,
		Org:        listOrg,
		ProjectDir: listProjectDir,
	}

	if listUser {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		opts.UserDirs, err = config.ResolveSkillsDirs(cfg)
		if err != nil {
			return err
		}
	}
	if listOrg {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		opts.OrgRepoURL = cfg.Org.RepoURL
		opts.OrgName = cfg.Org.Name
	}

	result, err := skillset.LoadAll(opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(result.Skills) == 0 {
		ui.PrintWarning("No skills found.")
		ui.PrintDim("Run `skillsctl doctor` to see which directories were scanned.")
		return nil
	}

	ui.PrintTableHeader("NAME", "TRIGGERS", "SOURCE")
	for _, sk := range result.Skills {
		triggers := strings.Join(sk.Triggers, ", ")
		if triggers == "" {
			triggers = "-"
		}
		ui.PrintTableRow(sk.Name, triggers, string(sk.Source))
	}

	ui.Println()
	sources := make([]string, 0, len(result.Sources))
	for source := range result.Sources {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		ui.PrintDim("%s: %d", source, result.Sources[source])
	}
	return nil
}
