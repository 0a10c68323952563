// Package logging provides persistent file logging for the dialog tools,
// so failures of a dialog launched from a desktop shortcut can still be
// diagnosed afterwards.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logFileName    = "nfd.log"
	maxLogFileSize = 10 * 1024 * 1024 // 10MB
	maxLogFiles    = 5
)

var (
	global *FileLogger
	mu     sync.Mutex
)

// FileLogger writes the standard logger's output to a rotating file and,
// optionally, to stderr.
type FileLogger struct {
	path string
	file *os.File
	mu   sync.Mutex
	size int64
	out  io.Writer
}

// DefaultDir is the log directory used when Init is given an empty dir.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "nfd-go"), nil
}

// Init redirects the standard logger to dir/nfd.log, and also to stderr
// when echo is set. Calling Init again before Close is a no-op.
func Init(dir string, echo bool) error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	l := &FileLogger{path: filepath.Join(dir, logFileName)}
	if err := l.open(echo); err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	global = l

	log.SetOutput(l.out)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("[logging] File logging initialized at: %s", l.path)
	return nil
}

// Path returns the active log file, or "" when file logging is off.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return ""
	}
	return global.path
}

// Close restores stderr logging and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		return nil
	}

	log.SetOutput(os.Stderr)

	global.mu.Lock()
	defer global.mu.Unlock()

	var err error
	if global.file != nil {
		err = global.file.Close()
		global.file = nil
	}
	global = nil
	return err
}

func (l *FileLogger) open(echo bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := os.Stat(l.path)
	switch {
	case err == nil:
		l.size = info.Size()
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	if l.size >= maxLogFileSize {
		if err := l.rotateLocked(); err != nil {
			return fmt.Errorf("failed to rotate logs: %w", err)
		}
	} else {
		file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", l.path, err)
		}
		l.file = file
	}

	l.out = &sizeTracker{logger: l}
	if echo {
		l.out = io.MultiWriter(os.Stderr, l.out)
	}
	return nil
}

// sizeTracker writes to the log file and rotates once it grows past
// maxLogFileSize.
type sizeTracker struct {
	logger *FileLogger
}

func (w *sizeTracker) Write(p []byte) (int, error) {
	l := w.logger
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return 0, fmt.Errorf("log file not open")
	}

	n, err := l.file.Write(p)
	if err != nil {
		return n, err
	}
	l.size += int64(n)

	if l.size >= maxLogFileSize {
		if rerr := l.rotateLocked(); rerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate logs: %v\n", rerr)
		}
	}
	return n, nil
}

// rotateLocked shifts nfd.log -> nfd.log.1 -> ... -> nfd.log.(maxLogFiles-1),
// dropping the oldest, and opens a fresh nfd.log. l.mu must be held.
func (l *FileLogger) rotateLocked() error {
	if l.file != nil {
		if err := l.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		l.file = nil
	}

	os.Remove(fmt.Sprintf("%s.%d", l.path, maxLogFiles-1))
	for i := maxLogFiles - 2; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", l.path, i), fmt.Sprintf("%s.%d", l.path, i+1))
	}
	if err := os.Rename(l.path, l.path+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rename current log: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create new log file: %w", err)
	}
	l.file = file
	l.size = 0

	marker := fmt.Sprintf("=== Log rotated at %s ===\n", time.Now().Format(time.RFC3339))
	n, _ := l.file.WriteString(marker)
	l.size += int64(n)
	return nil
}
