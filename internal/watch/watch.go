// Package watch rebuilds a manifest whenever its directory changes,
// debouncing bursts of events and skipping rewrites that would produce
// byte-identical output.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/sourcemapkit/gosourcemap/internal/logx"
)

var ignoreDirs = []string{"node_modules", "vendor", ".git", "dist", "build"}

// Watcher monitors a directory tree and calls onChange, debounced, after
// a burst of filesystem events settles.
type Watcher struct {
	watcher     *fsnotify.Watcher
	logger      logx.Logger
	onChange    func()
	debounceDur time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	done   chan struct{}
	closed bool
}

// New creates a Watcher rooted at root. onChange is invoked (from a
// background goroutine) after debounceDur of quiet following the last
// observed filesystem event.
func New(root string, debounceDur time.Duration, logger logx.Logger, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:     fsw,
		logger:      logger,
		onChange:    onChange,
		debounceDur: debounceDur,
		done:        make(chan struct{}),
	}

	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	logger.Infof("watching %s (debounce %s)", root, debounceDur)
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if shouldIgnore(path) {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warnf("failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
}

func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") && base != "." {
		return true
	}
	for _, d := range ignoreDirs {
		if base == d {
			return true
		}
	}
	return false
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDur, w.onChange)
}

// Close stops the watcher. Idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	return w.watcher.Close()
}

// Fingerprinter tracks the xxhash of the last content it saw, letting a
// rebuild loop skip rewriting an output file when a rebuild produces
// byte-identical output. Safe for concurrent use.
type Fingerprinter struct {
	mu   sync.Mutex
	last uint64
	have bool
}

// Changed reports whether content's fingerprint differs from the last
// one recorded, and records content's fingerprint as the new baseline.
func (f *Fingerprinter) Changed(content []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := xxhash.Sum64(content)
	changed := !f.have || sum != f.last
	f.last = sum
	f.have = true
	return changed
}
