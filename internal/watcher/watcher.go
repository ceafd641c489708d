package watcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/strivetech/strivekit/internal/fsutil"
)

// EventType represents the kind of change seen on a managed file
type EventType int

const (
	FileChanged EventType = iota
	FileRemoved
)

func (t EventType) String() string {
	switch t {
	case FileChanged:
		return "changed"
	case FileRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event represents a change to one managed file
type Event struct {
	Type EventType
	Path string
}

// Watcher watches exported files and reports changes to them
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]string // absolute path -> expected content
	Events  chan Event
	Errors  chan error
	done    chan struct{}
	mu      sync.Mutex
	running bool
	closed  bool
}

// New creates a watcher for the given path -> content map
func New(files map[string]string) (*Watcher, error) {
	managed := make(map[string]string, len(files))
	for path, content := range files {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		managed[abs] = content
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		files:   managed,
		Events:  make(chan Event, 100),
		Errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// WatchDirs adds a watch on every directory holding a managed file.
// Files are renamed into place, so the directory is watched rather than
// the files themselves.
func (w *Watcher) WatchDirs() error {
	seen := make(map[string]bool)
	for path := range w.files {
		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}
		seen[dir] = true

		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running || w.closed {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.eventLoop()
}

// eventLoop processes file system events
func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			e := w.classifyEvent(event)
			if e != nil {
				// Non-blocking send
				select {
				case w.Events <- *e:
				default:
					// Channel full, skip event
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Non-blocking error send
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// classifyEvent maps a raw fsnotify event to a managed-file event
func (w *Watcher) classifyEvent(event fsnotify.Event) *Event {
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return nil
	}

	switch {
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return &Event{Type: FileRemoved, Path: path}
	case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) != 0:
		return &Event{Type: FileChanged, Path: path}
	}
	return nil
}

// Expected returns the content a managed path must hold
func (w *Watcher) Expected(path string) (string, bool) {
	content, ok := w.files[filepath.Clean(path)]
	return content, ok
}

// Restore rewrites path with content when it is missing or differs.
// It reports whether a write happened.
func Restore(path, content string) (bool, error) {
	current, err := os.ReadFile(path)
	if err == nil && bytes.Equal(current, []byte(content)) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := fsutil.WriteFileAtomic(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Keep restores managed files as they drift until ctx is cancelled.
// onRestore is called after each rewrite and may be nil.
func (w *Watcher) Keep(ctx context.Context, onRestore func(Event)) error {
	if err := w.WatchDirs(); err != nil {
		return err
	}
	w.Start()

	for {
		select {
		case <-ctx.Done():
			return nil

		case e := <-w.Events:
			content, ok := w.Expected(e.Path)
			if !ok {
				continue
			}
			restored, err := Restore(e.Path, content)
			if err != nil {
				return err
			}
			if restored && onRestore != nil {
				onRestore(e)
			}

		case err := <-w.Errors:
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.running {
		close(w.done)
		w.running = false
	}
	return w.watcher.Close()
}

// Close is an alias for Stop
func (w *Watcher) Close() error {
	return w.Stop()
}
