// Package watch reports media files that arrive under a directory tree.
// A file is reported once writes to it have stopped for the settle period,
// so callers do not probe half-copied files.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is used when a non-positive settle period is given.
const DefaultSettle = 2 * time.Second

// Logger is the subset of the application logger the watcher needs.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Watcher watches a directory tree recursively.
type Watcher struct {
	fsw     *fsnotify.Watcher
	settle  time.Duration
	match   func(path string) bool
	updates chan string
	removed chan string
	errs    chan error
	log     Logger
	verbose bool

	mu      sync.Mutex
	pending map[string]time.Time // path → time of last write/create
}

// New creates a watcher reporting files accepted by match (all files when
// match is nil).
func New(settle time.Duration, match func(string) bool, log Logger, verbose bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	if match == nil {
		match = func(string) bool { return true }
	}
	return &Watcher{
		fsw:     fsw,
		settle:  settle,
		match:   match,
		updates: make(chan string),
		removed: make(chan string, 64),
		errs:    make(chan error, 8),
		log:     log,
		verbose: verbose,
		pending: make(map[string]time.Time),
	}, nil
}

// Updates delivers settled file paths.
func (w *Watcher) Updates() <-chan string { return w.updates }

// Removed delivers media paths removed or renamed away under the root.
// Paths are dropped when nobody drains the channel.
func (w *Watcher) Removed() <-chan string { return w.removed }

// Errors delivers non-fatal watch errors. Errors are dropped with a warning
// when nobody drains the channel.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Watch blocks until ctx is done. Files already present under root are not
// reported; only new or rewritten ones are.
func (w *Watcher) Watch(ctx context.Context, root string) error {
	defer w.fsw.Close()
	defer close(w.updates)

	if err := checkDir(root); err != nil {
		return err
	}
	if err := w.addTree(root, time.Time{}); err != nil {
		return err
	}

	tick := time.NewTicker(w.tickInterval())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev, time.Now())
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.handleError(err)
		case now := <-tick.C:
			for _, p := range w.due(now) {
				select {
				case w.updates <- p:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

func (w *Watcher) tickInterval() time.Duration {
	iv := w.settle / 4
	if iv < 10*time.Millisecond {
		iv = 10 * time.Millisecond
	}
	return iv
}

func checkDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("watch %q: %w", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("watch %q: not a directory", path)
	}
	return nil
}

// addTree watches root and every directory below it. When seen is non-zero
// the files found are recorded as arriving at seen; a directory moved in
// whole produces no per-file events of its own.
func (w *Watcher) addTree(root string, seen time.Time) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.fsw.Add(p); err != nil {
				return fmt.Errorf("watch %q: %w", p, err)
			}
			return nil
		}
		if !seen.IsZero() {
			w.record(p, seen)
		}
		return nil
	})
}

func (w *Watcher) handleEvent(ev fsnotify.Event, now time.Time) {
	switch {
	case ev.Has(fsnotify.Create):
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if err := w.addTree(ev.Name, now); err != nil {
				w.handleError(err)
			}
			return
		}
		w.record(ev.Name, now)
	case ev.Has(fsnotify.Write):
		w.record(ev.Name, now)
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		w.forget(ev.Name)
	}
}

// handleError sends err without blocking the event loop.
func (w *Watcher) handleError(err error) {
	if err == nil {
		return
	}
	select {
	case w.errs <- err:
	default:
		w.log.Warn("Watch error dropped: %v", err)
	}
}

func (w *Watcher) record(path string, now time.Time) {
	if !w.match(path) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.pending[path]; !ok {
		w.log.Debug(w.verbose, "New file: %s", path)
	}
	w.pending[path] = now
}

func (w *Watcher) forget(path string) {
	if !w.match(path) {
		return
	}
	w.mu.Lock()
	delete(w.pending, path)
	w.mu.Unlock()

	select {
	case w.removed <- path:
	default:
		w.log.Debug(w.verbose, "Removal dropped: %s", path)
	}
}

// due removes and returns, sorted, every pending path whose last event is
// at least settle old.
func (w *Watcher) due(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for p, last := range w.pending {
		if now.Sub(last) >= w.settle {
			out = append(out, p)
			delete(w.pending, p)
		}
	}
	sort.Strings(out)
	return out
}
