// Package watch monitors an acquisition directory and hands finished
// recording files to a handler. Devices write recordings incrementally, so
// events are debounced per file before the handler runs.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rickerevolte/eegsift/pkg/log"
)

// Handler processes one recording file.
type Handler func(ctx context.Context, path string)

// Watcher runs a Handler for every recording that appears or changes in a
// directory.
type Watcher struct {
	dir      string
	debounce time.Duration
	handler  Handler
	logger   log.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer

	// runMu serializes handler execution: recordings are processed one at
	// a time even when several settle in the same debounce window.
	runMu sync.Mutex
}

// New creates a watcher over dir. The handler runs debounce after the last
// write event touching a file.
func New(dir string, debounce time.Duration, handler Handler, logger log.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		handler:  handler,
		logger:   logger,
		timers:   make(map[string]*time.Timer),
	}
}

// Run processes the recordings already present in the directory, then
// blocks watching for new ones until the context is cancelled. The only
// error it returns is a failure to set up the directory watch.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	w.processExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRecording(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("directory watch error", log.Err(err))
		}
	}
}

// processExisting runs the handler for recordings already in the directory.
func (w *Watcher) processExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Error("list recordings directory", log.Err(err))
		return
	}
	for _, e := range entries {
		if e.IsDir() || !isRecording(e.Name()) {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		w.runHandler(ctx, filepath.Join(w.dir, e.Name()))
	}
}

// schedule (re)arms the debounce timer for one file.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.logger.Info("recording settled", log.String("path", path))
		w.runHandler(ctx, path)
	})
}

// runHandler invokes the handler under runMu so that at most one recording
// is processed at any moment.
func (w *Watcher) runHandler(ctx context.Context, path string) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	w.handler(ctx, path)
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, t := range w.timers {
		t.Stop()
	}
}

// isRecording reports whether path looks like a device recording file.
func isRecording(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".eeg")
}
