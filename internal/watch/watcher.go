// Package watch recomposes the theme when its options file or custom
// stylesheet changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/logfields"
)

// DefaultDebounce is the quiet period after the last change before fn runs.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc is called after a debounced change.
type ReloadFunc func(ctx context.Context) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher monitors an options file plus extra paths and calls a ReloadFunc
// once per burst of changes. Reloads never overlap.
type Watcher struct {
	files map[string]struct{}
	dirs  []string
	// pending holds directories that did not exist yet. Their nearest
	// existing ancestor is watched until they appear.
	pending  map[string]struct{}
	fn       ReloadFunc
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	reloadMu sync.Mutex
	stopOnce sync.Once
	stopChan chan struct{}
	trigger  chan struct{}
}

// New creates a watcher for path and extra. Directories that do not exist
// yet are skipped when the watcher starts.
func New(path string, extra []string, fn ReloadFunc, opts ...Option) (*Watcher, error) {
	if fn == nil {
		return nil, errors.InternalError("watch: nil reload func").Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create file watcher").Build()
	}

	w := &Watcher{
		files:    make(map[string]struct{}),
		pending:  make(map[string]struct{}),
		fn:       fn,
		watcher:  fw,
		logger:   slog.Default(),
		debounce: DefaultDebounce,
		stopChan: make(chan struct{}),
		trigger:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := make(map[string]bool)
	for _, p := range append([]string{path}, extra...) {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve watched path").
				WithContext("path", p).
				Build()
		}
		w.files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// Start begins watching. The watched directories are watched rather than the
// files so that editors replacing files are seen. A directory of an extra
// path that does not exist yet is picked up once it is created.
func (w *Watcher) Start(ctx context.Context) error {
	added := 0
	for i, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			if i == 0 {
				return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch options directory").
					WithContext("path", dir).
					Build()
			}
			w.logger.Debug("Watch directory missing, watching ancestor", logfields.Path(dir), logfields.Error(err))
			w.pending[dir] = struct{}{}
			w.attachPending(dir)
			continue
		}
		added++
	}

	w.logger.Info("Starting options watcher", logfields.Count(added), slog.Duration("debounce", w.debounce))

	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping options watcher")
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && w.resolvePending(event.Name) {
				w.triggerReload()
			}
			if !w.matches(event.Name) {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.logger.Debug("Watched file changed", logfields.File(event.Name), logfields.Op(event.Op.String()))
				w.triggerReload()
			case event.Has(fsnotify.Remove):
				w.logger.Warn("Watched file removed", logfields.File(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Options watcher error", logfields.Error(err))
		}
	}
}

// attachPending watches dir if it exists, otherwise its nearest existing
// ancestor. It reports whether dir itself is now watched.
func (w *Watcher) attachPending(dir string) bool {
	for {
		if err := w.watcher.Add(dir); err == nil {
			delete(w.pending, dir)
			w.logger.Debug("Watching created directory", logfields.Path(dir))
			return true
		}
		ancestor := nearestExisting(dir)
		if ancestor == "" {
			return false
		}
		if err := w.watcher.Add(ancestor); err != nil {
			w.logger.Debug("Cannot watch ancestor", logfields.Path(ancestor), logfields.Error(err))
			return false
		}
		// A deeper level may have appeared while the ancestor was added.
		if nearestExisting(dir) == ancestor {
			return false
		}
	}
}

// resolvePending retries pending directories below or at name. It reports
// whether a newly watched directory already holds a watched file.
func (w *Watcher) resolvePending(name string) bool {
	created, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	found := false
	for dir := range w.pending {
		if dir != created && !strings.HasPrefix(dir, created+string(filepath.Separator)) {
			continue
		}
		if !w.attachPending(dir) {
			continue
		}
		for file := range w.files {
			if filepath.Dir(file) != dir {
				continue
			}
			if _, err := os.Stat(file); err == nil {
				found = true
			}
		}
	}
	return found
}

func nearestExisting(dir string) string {
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	var timer *time.Timer
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopChan:
			stopTimer()
			return
		case <-w.trigger:
			stopTimer()
			timer = time.AfterFunc(w.debounce, func() {
				if err := w.reload(ctx); err != nil {
					w.logger.Error("Recomposition failed", logfields.Error(err))
				}
			})
		}
	}
}

func (w *Watcher) triggerReload() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *Watcher) reload(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	start := time.Now()
	if err := w.fn(ctx); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	w.logger.Info("Recomposed theme", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}
