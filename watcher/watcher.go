// Package watcher regenerates the sitemap when the pages tree changes.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before regenerating.
const DefaultDebounce = 500 * time.Millisecond

// RegenerateFunc rebuilds the sitemap.
type RegenerateFunc func(ctx context.Context) error

// Watcher watches a pages directory tree.
type Watcher struct {
	root       string
	regenerate RegenerateFunc
	log        logger.Logger
	debounce   time.Duration
	exclude    []string

	mu sync.Mutex // serializes regenerations
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithExclude drops events for paths at or below any of paths, such as the
// sitemap output. A path that contains the watched root is ignored.
func WithExclude(paths ...string) Option {
	return func(w *Watcher) { w.exclude = append(w.exclude, paths...) }
}

// New returns a Watcher for root.
func New(root string, regenerate RegenerateFunc, log logger.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		root:       root,
		regenerate: regenerate,
		log:        log,
		debounce:   DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	rootAbs := absPath(root)
	exclude := w.exclude[:0]
	for _, p := range w.exclude {
		if p == "" {
			continue
		}
		abs := absPath(p)
		if within(abs, rootAbs) {
			continue
		}
		exclude = append(exclude, abs)
	}
	w.exclude = exclude
	return w
}

// Run blocks until ctx is done. Regeneration failures are logged and the
// watcher keeps running.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	defer fw.Close()

	if err := w.addTree(fw, w.root); err != nil {
		return err
	}
	w.log.Info("watching pages", logger.String("root", w.root), logger.Strings("exclude", w.exclude))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if sitemap.IsReservedPage(filepath.Base(event.Name)) || w.excluded(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fw, event.Name); err != nil {
						w.log.Warn("watch new directory", logger.Error(err))
					}
				}
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			w.log.Debug("pages changed", logger.String("file", event.Name), logger.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() { w.run(ctx) })

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("file watcher error", logger.Error(err))
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	if err := w.regenerate(ctx); err != nil {
		w.log.Error("regenerate sitemap", logger.Error(err))
		return
	}
	w.log.Info("sitemap regenerated", logger.Duration("took", time.Since(start)))
}

// addTree watches dir and every non-reserved directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && (sitemap.IsReservedPage(info.Name()) || w.excluded(path)) {
			return filepath.SkipDir
		}
		return errors.Wrapf(fw.Add(path), "watch %s", path)
	})
}

func (w *Watcher) excluded(name string) bool {
	abs := absPath(name)
	for _, e := range w.exclude {
		if within(e, abs) {
			return true
		}
	}
	return false
}

// within reports whether p is parent or below it.
func within(parent, p string) bool {
	rel, err := filepath.Rel(parent, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
