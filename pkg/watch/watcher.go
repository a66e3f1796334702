// Package watch re-runs analysis when source files change.
package watch

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/panbanda/funcspace/internal/output"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/lang"
)

// DefaultDebounce is how long a file must stay unchanged before it is
// reported.
const DefaultDebounce = 500 * time.Millisecond

// minTick bounds how often pending files are checked.
const minTick = time.Millisecond

// ChangeFunc receives the files that changed since the last call, sorted.
type ChangeFunc func(ctx context.Context, paths []string)

// Watcher monitors a directory tree for changes to source files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	config    *config.Config
	languages []lang.Language
	debounce  time.Duration
	path      string
	msg       *output.Formatter
	onChange  ChangeFunc

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewWatcher creates a watcher for the tree rooted at path. debounce <= 0
// uses DefaultDebounce.
func NewWatcher(path string, cfg *config.Config, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		config:    cfg,
		languages: cfg.LanguageFilter(),
		debounce:  debounce,
		path:      path,
		msg:       output.NewWriterFormatter(output.FormatText, os.Stderr, true),
		onChange:  onChange,
		pending:   make(map[string]time.Time),
	}, nil
}

// SetOutput sets where status messages are written and whether they are
// colored.
func (w *Watcher) SetOutput(out io.Writer, colored bool) {
	w.msg = output.NewWriterFormatter(output.FormatText, out, colored)
}

// addTree watches root and every directory below it that is not excluded.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && slices.Contains(w.config.Exclude.Dirs, d.Name()) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// Start watches until ctx is cancelled. Batches of changed files are
// passed to the change function one at a time, never concurrently.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addTree(w.path); err != nil {
		return err
	}

	w.msg.Info("Watching for changes in %s...", w.path)
	w.msg.Info("Press Ctrl+C to stop")

	ticker := time.NewTicker(max(w.debounce/5, minTick))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.msg.Error("watch: %v", err)

		case <-ticker.C:
			if ready := w.takeReady(time.Now()); len(ready) > 0 && w.onChange != nil {
				w.onChange(ctx, ready)
			}
		}
	}
}

// handleEvent records writes and creations of source files. New
// directories are watched as they appear.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	path := event.Name
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !slices.Contains(w.config.Exclude.Dirs, info.Name()) {
				_ = w.addTree(path)
			}
			return
		}
	}

	if !w.Accepts(path) {
		return
	}

	w.mu.Lock()
	w.pending[path] = time.Now()
	w.mu.Unlock()
}

// Accepts reports whether a change to path should trigger analysis.
func (w *Watcher) Accepts(path string) bool {
	rel, err := filepath.Rel(w.path, path)
	if err != nil {
		rel = path
	}
	if w.config.ShouldExclude(rel) {
		return false
	}
	l, ok := lang.FromPath(path)
	if !ok {
		return false
	}
	return len(w.languages) == 0 || slices.Contains(w.languages, l)
}

// takeReady removes and returns the files that have been stable for the
// debounce period at now.
func (w *Watcher) takeReady(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, lastMod := range w.pending {
		if now.Sub(lastMod) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	sort.Strings(ready)
	return ready
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// WatchedDirs returns the watched directories.
func (w *Watcher) WatchedDirs() []string {
	return w.fsWatcher.WatchList()
}
