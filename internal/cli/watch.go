package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// RunWatch runs the scenario, then re-runs it whenever the scenario file or
// the catalog file changes, until ctx is cancelled.
func RunWatch(ctx context.Context, opts RunOptions, stdout io.Writer) error {
	logger := createLogger(opts.Debug)

	targets := []string{opts.ScenarioPath}
	if opts.CatalogPath != "" {
		targets = append(targets, opts.CatalogPath)
	}

	watcher, err := newWatcher(targets)
	if err != nil {
		return err
	}
	defer watcher.Close()

	runOnce := func() {
		if err := RunScenario(opts, stdout); err != nil {
			logger.Error("Run failed", "err", err)
			printSystemMessage(stdout, "Run failed: %v", err)
		}
		printSystemMessage(stdout, "Waiting for changes...")
	}

	logger.Info("Starting Watcher", "targets", targets)
	runOnce()

	return watchLoop(ctx, watcher, targets, watchDebounce, logger, func(name string) {
		printSystemMessage(stdout, "Change detected in '%s'.", name)
		runOnce()
	})
}

// newWatcher watches the parent directories of targets. Watching directories
// rather than files survives editors that save by rename.
func newWatcher(targets []string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	seen := make(map[string]bool)
	for _, t := range targets {
		dir := filepath.Dir(t)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return watcher, nil
}

// watchLoop calls onChange once per burst of events touching one of targets.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, targets []string, debounce time.Duration, logger *slog.Logger, onChange func(name string)) error {
	wanted := make(map[string]bool, len(targets))
	for _, t := range targets {
		wanted[filepath.Clean(t)] = true
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !wanted[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("File event", "name", event.Name, "op", event.Op.String())
			pending = event.Name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "err", err)

		case <-timerC:
			timerC = nil
			onChange(pending)
		}
	}
}
