// Package main provides the watch command.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/reisepass/skillsctl/internal/config"
	"github.com/reisepass/skillsctl/internal/skills"
	"github.com/reisepass/skillsctl/internal/ui"
)

// watchDebounce coalesces bursts of file events into one rescan.
const watchDebounce = 300 * time.Millisecond

// watchCmd re-scans the skill directories whenever their contents change.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-scan skill directories on file changes",
	Long: `Watch the candidate skill directories and re-run discovery when
their contents change. Useful while authoring skills: save the file and
immediately see whether the loader picks it up.

Stops on Ctrl+C.

EXAMPLES:
  skillsctl watch`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

// runWatch sets up the fsnotify watcher and loops until interrupted.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command arguments (unused, validated as empty by cobra)
//
// Returns:
//   - error: If directory resolution or watcher setup fails
func runWatch(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	dirs, err := config.ResolveSkillsDirs(cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			ui.PrintDim("Not watching %s (does not exist)", dir)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		ui.PrintInfo("Watching %s", dir)
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("none of the candidate directories exist; run `skillsctl doctor`")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rescan(dirs)

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			ui.Println()
			ui.PrintInfo("Stopped.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.Debug("File event", "op", event.Op.String(), "path", event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", "error", err)
		case <-pending:
			rescan(dirs)
		}
	}
}

// rescan loads skills from dirs and prints the result.
//
// Parameters:
//   - dirs: The candidate directories
func rescan(dirs []string) {
	loaded, err := skills.NewLoader(skills.SourceUser, dirs...).Load()
	if err != nil {
		ui.PrintError("Scan failed: %v", err)
		return
	}

	ui.PrintSuccess("%s: %d skill(s) discovered", time.Now().Format("15:04:05"), len(loaded))
	for _, sk := range loaded {
		ui.PrintDim("  %s", sk.Name)
	}
}
