// Package ui provides the ASCII banner for skillsctl.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for skillsctl.
const banner = `
  ███████╗██╗  ██╗██╗██╗     ██╗     ███████╗
  ██╔════╝██║ ██╔╝██║██║     ██║     ██╔════╝
  ███████╗█████╔╝ ██║██║     ██║     ███████╗
  ╚════██║██╔═██╗ ██║██║     ██║     ╚════██║
  ███████║██║  ██╗██║███████╗███████╗███████║
  ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚══════╝`

// tagline is the product tagline.
const tagline = "OpenHands skills, loaded where you expect them"

// PrintBanner prints the skillsctl banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode || !IsInteractive() {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	// Tagline
	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	// Version and info
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)

	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}

// GetHelpText returns the verbose help text for the CLI, used by
// `skillsctl --help`. Contains the full curated command reference
// without the ASCII banner.
func GetHelpText() string {
	teal := lipgloss.NewStyle().Foreground(Teal).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

%s
  %s               List skills from every configured source
  %s             Diagnose why skills are not loading
  %s              Reproduce the container path-mismatch defect

%s
  %s        Print an embedded starter skill
  %s     Install starter skills to ~/.openhands/skills
  %s             Pin the skill directories the loader scans
  %s              Re-scan skill directories on file changes

%s  Skill files live in ~/.openhands/skills (*.md with YAML frontmatter).`,
		dim.Render(tagline+"."),
		teal.Render("Diagnostics:"),
		teal.Render("skillsctl list"),
		teal.Render("skillsctl doctor"),
		teal.Render("skillsctl repro"),
		teal.Render("Starter skills:"),
		teal.Render("skillsctl skills show"),
		teal.Render("skillsctl skills install"),
		teal.Render("skillsctl config"),
		teal.Render("skillsctl watch"),
		teal.Render("Format:"),
	)
}
