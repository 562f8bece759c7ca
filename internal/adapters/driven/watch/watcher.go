// Package watch rebuilds the index when corpus files change on disk.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/planqa-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last change
// before triggering a rebuild. Document sets are often copied in bulk;
// one rebuild at the end beats one per file.
const DefaultDebounce = 2 * time.Second

// Watcher triggers a rebuild callback when recognized files in the
// corpus directory change.
type Watcher struct {
	dir      string
	relevant func(path string) bool
	rebuild  func(ctx context.Context)
	debounce time.Duration
}

// New creates a watcher over dir. relevant filters paths worth a
// rebuild (typically the loader registry's Recognized); rebuild runs
// after the debounce window closes.
func New(dir string, relevant func(path string) bool, rebuild func(ctx context.Context)) *Watcher {
	return &Watcher{
		dir:      dir,
		relevant: relevant,
		rebuild:  rebuild,
		debounce: DefaultDebounce,
	}
}

// Run watches until the context is cancelled. The fsnotify watcher is
// closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}
	logger.Info("watching %s for corpus changes", w.dir)

	w.loop(ctx, fsw.Events, fsw.Errors)
	return nil
}

// loop consumes events until ctx is done, debouncing rebuilds. Split
// from Run so tests can feed synthetic events.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !w.wantsRebuild(event) {
				continue
			}
			logger.Debug("corpus change: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)

		case <-fire:
			timer = nil
			fire = nil
			logger.Info("corpus changed, rebuilding index")
			w.rebuild(ctx)
		}
	}
}

// wantsRebuild reports whether the event affects the index. Chmod and
// hidden or unrecognized files do not.
func (w *Watcher) wantsRebuild(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return w.relevant == nil || w.relevant(event.Name)
}
