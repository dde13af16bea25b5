// Package logger writes structured logs to a file so they never interleave
// with the terminal UI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is used when Init is never called.
const DefaultLogPath = "/tmp/panegrid.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	base     *slog.Logger
	logFile  *os.File
	logPath  string
)

// Init opens path for appending and makes it the log destination. Calling it
// again switches to the new file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	closeLocked()
	logFile = f
	logPath = path
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// InitWriter logs to w instead of a file. Tests use it to capture output.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Path returns the current log file, empty when logging to a writer.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func ensureInit() {
	if base != nil {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logFile = f
	logPath = DefaultLogPath
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
}

// Get returns the shared logger, opening the default file on first use.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return base
}

// Component returns the shared logger with a component attribute attached.
//
//	log := logger.Component("workspace")
//	log.Info("split", "pane", id)
func Component(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}

// Close closes the log file. Later calls to Get reopen the default file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logPath = ""
	base = nil
}
