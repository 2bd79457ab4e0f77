// Package watch rebuilds the blog when project files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDuration collapses bursts of events (editors writing temp files)
// into one callback.
const DebounceDuration = 100 * time.Millisecond

// Event is a wrapper around fsnotify.Event
type Event struct {
	Name string
	Op   fsnotify.Op
}

// Watcher handles filesystem events and triggers builds
type Watcher struct {
	watcher *fsnotify.Watcher
	Dirs    []string
	OnEvent func(Event)
	logger  *slog.Logger
}

// New creates a new watcher for the specified directories
func New(dirs []string, onEvent func(Event), logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		watcher: w,
		Dirs:    dirs,
		OnEvent: onEvent,
		logger:  logger,
	}, nil
}

// isHidden skips dot directories such as .git
func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

func (w *Watcher) addRecursive(dir string) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if isHidden(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		w.logger.Warn("Failed to watch directory", "path", dir, "error", err)
	}
}

// Start watches until ctx is done. OnEvent is called once per burst of
// changes, never concurrently with itself, and never after Start returned.
func (w *Watcher) Start(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	for _, dir := range w.Dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		w.addRecursive(dir)
	}

	w.logger.Info("Watch mode active. Waiting for changes...", "dirs", len(w.Dirs))

	var (
		timer   *time.Timer
		running sync.Mutex
		pending sync.WaitGroup
	)
	// A callback that already started finishes before Start returns.
	defer func() {
		if timer != nil && timer.Stop() {
			pending.Done()
		}
		pending.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// Ignore chmod and other meta events
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if isHidden(event.Name) {
				continue
			}

			// Handle new directories
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addRecursive(event.Name)
				}
			}

			w.logger.Debug("File changed", "path", event.Name, "op", event.Op.String())

			if timer != nil && timer.Stop() {
				pending.Done()
			}
			ev := Event{Name: event.Name, Op: event.Op}
			pending.Add(1)
			timer = time.AfterFunc(DebounceDuration, func() {
				defer pending.Done()
				running.Lock()
				defer running.Unlock()
				if ctx.Err() != nil {
					return
				}
				w.OnEvent(ev)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}
