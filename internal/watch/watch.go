// Package watch runs an action when files change on disk, coalescing bursts
// of events into one call.
//
// Typical usage:
//
//	w, err := watch.New([]string{dbPath}, watch.Options{Debounce: 200 * time.Millisecond})
//	defer w.Close()
//	err = w.Run(ctx, func(name string) error { return reexport() })
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options tunes the watcher.
type Options struct {
	// Debounce is the quiet period after the last event before the action
	// fires. 0 means fire on every event.
	Debounce time.Duration
	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

// Watcher observes a set of files. SQLite companions of a watched file
// (name-wal, name-journal) count as the file itself.
type Watcher struct {
	fs      *fsnotify.Watcher
	targets map[string]bool
	opts    Options
	log     *slog.Logger
}

// New watches paths. Their directories must exist; the files need not.
func New(paths []string, opts Options) (*Watcher, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fs:      fsw,
		targets: make(map[string]bool),
		opts:    opts,
		log:     opts.Logger.With("component", "watch"),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		// Watching the directory survives editors and SQLite replacing
		// the file.
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Matches reports whether name is one of the watched files.
func (w *Watcher) Matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if w.targets[abs] {
		return true
	}
	for _, suffix := range []string{"-wal", "-journal"} {
		if base, ok := strings.CutSuffix(abs, suffix); ok && w.targets[base] {
			return true
		}
	}
	return false
}

// Run blocks until ctx is done, calling action after each settled burst of
// changes. Action errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, action func(name string) error) error {
	var timer *time.Timer
	var fire <-chan time.Time
	pending := ""

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.log.Debug("watch: started", "files", len(w.targets), "debounce", w.opts.Debounce)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("watch: stopped")
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.Matches(event.Name) {
				continue
			}
			pending = event.Name
			if w.opts.Debounce <= 0 {
				w.run(action, pending)
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.opts.Debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.run(action, pending)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch: error", "error", err)
		}
	}
}

func (w *Watcher) run(action func(string) error, name string) {
	if err := action(name); err != nil {
		w.log.Warn("watch: action failed", "file", name, "error", err)
	}
}
