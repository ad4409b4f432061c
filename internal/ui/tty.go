// Package ui provides terminal detection helpers.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdout is attached to a terminal.
// Banners and decorative output are skipped when it is not, keeping
// piped output machine-friendly.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
