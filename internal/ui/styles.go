// Package ui provides terminal UI components using Charm libraries.
//
// This package contains the styling and rendering helpers for the
// skillsctl terminal interface.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors for skillsctl.
var (
	// Primary brand color
	Teal = lipgloss.Color("#14B8A6")

	// Secondary colors
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Gray    = lipgloss.Color("#6B7280")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Teal)

	// SubtitleStyle for secondary headings
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Table styles.
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Bold(true).
				Padding(0, 2)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 2)
)

// Status indicator styles.
var (
	// StatusPassedStyle for passed scenarios and healthy checks
	StatusPassedStyle = lipgloss.NewStyle().
				Foreground(Green)

	// StatusFailedStyle for failed scenarios and broken checks
	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(Red)

	// StatusReproducedStyle for a confirmed defect reproduction
	StatusReproducedStyle = lipgloss.NewStyle().
				Foreground(Teal).
				Bold(true)

	// StatusWarnStyle for warnings and inconclusive results
	StatusWarnStyle = lipgloss.NewStyle().
			Foreground(Amber)
)
