// Package logger writes charchat's debug log. The terminal belongs to the
// TUI, so everything goes to a file.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath is where the log goes when Init was never called
const DefaultLogPath = "/tmp/charchat-debug.log"

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	logFile      *os.File
	mu           sync.Mutex
	initDone     bool
	currentLevel = LevelInfo
)

// SetLevel sets the minimum log level to output
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// Init opens path for appending and routes all log output there.
// Calling Init again before Reset is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if initDone {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	useWriterLocked(f)
	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func useWriterLocked(w io.Writer) {
	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

func ensureInitLocked() {
	if initDone {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Fall back to discarding so we don't retry on every call.
		useWriterLocked(io.Discard)
	}
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	ensureInitLocked()
	if !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message using printf-style formatting
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes an info message
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a warning message
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes an error message
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Log writes a debug message. Kept for call sites that log chatter rather
// than events.
func Log(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// WithComponent returns a structured logger tagged with the component name.
// Use it for key/value logging; Debug/Info/Warn/Error for one-liners.
func WithComponent(name string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureInitLocked()
	return slogLogger.With("component", name)
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Reset drops all logger state so Init can be called again. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	slogLogger = nil
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}
