package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before its change is reported.
// Editors write shader files in bursts (truncate, write, rename); reloading
// on the first event would compile a half-written file.
const debounce = 200 * time.Millisecond

// Watcher watches a set of files for writes and hands the changed paths to
// the UI thread on request. fsnotify delivers events on its own goroutine;
// Take is the only crossing point back to the single-threaded viewer, which
// polls it once per frame.
type Watcher struct {
	fw *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]time.Time

	watched map[string]bool
}

// New starts a watcher with no files; add them with Add.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:      fw,
		pending: make(map[string]time.Time),
		watched: make(map[string]bool),
	}
	go w.run()
	return w, nil
}

// Add watches the directory containing path and remembers path itself as
// interesting. Watching the directory instead of the file survives the
// rename-over-save strategy most editors use.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.watched[abs] = true
	w.mu.Unlock()
	return w.fw.Add(filepath.Dir(abs))
}

// Take returns the watched paths whose last event is at least the debounce
// interval old, clearing them from the pending set. Called once per frame by
// the viewer.
func (w *Watcher) Take() []string {
	now := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, last := range w.pending {
		if now.Sub(last) >= debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	return ready
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			w.mu.Lock()
			if w.watched[abs] {
				w.pending[abs] = time.Now()
			}
			w.mu.Unlock()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the user can still reload manually.
		}
	}
}
