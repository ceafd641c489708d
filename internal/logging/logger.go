package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger appends timestamped lines tagged with a per-run id so output from
// repeated exports can be told apart in a shared log file.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	runID string
	now   func() time.Time
}

// New returns a logger writing to w. A nil writer discards everything.
func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		out:   w,
		runID: uuid.New().String()[:8],
		now:   time.Now,
	}
}

// Open creates (or appends to) the log file at path.
func Open(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: ensure log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	l := New(f)
	l.file = f
	return l, nil
}

// Discard returns a logger that drops every line.
func Discard() *Logger {
	return New(io.Discard)
}

// RunID identifies the current invocation.
func (l *Logger) RunID() string {
	if l == nil {
		return ""
	}
	return l.runID
}

// Close releases the file handle, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	timestamp := l.now().Format(time.RFC3339)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] [run %s] %s\n", timestamp, l.runID, line)
}
