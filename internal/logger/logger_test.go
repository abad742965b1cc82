package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger points the logger at a temp file and resets it afterwards.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-%d", 1)
	Info("visible-%d", 2)

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-1") {
		t.Error("debug message should not be written at info level")
	}
	if !strings.Contains(content, "visible-2") {
		t.Error("info message should be written")
	}
}

func TestSetLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	SetLevel(LevelDebug)
	Debug("debug-on")
	SetLevel(LevelInfo)
	Debug("debug-off")
	SetLevel(LevelError)
	Warn("warn-filtered")
	Error("error-kept")

	content := readLog(t, logPath)
	if !strings.Contains(content, "debug-on") {
		t.Error("expected debug message while debug enabled")
	}
	if strings.Contains(content, "debug-off") {
		t.Error("unexpected debug message after debug disabled")
	}
	if strings.Contains(content, "warn-filtered") {
		t.Error("warning written at error level")
	}
	if !strings.Contains(content, "error-kept") {
		t.Error("expected error message at error level")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("toast").Info("enqueued", "id", 7)

	content := readLog(t, logPath)
	for _, want := range []string{"component=toast", "enqueued", "id=7"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init("/nonexistent/dir/charchat.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestClose_ThenLogDoesNotPanic(t *testing.T) {
	setupTestLogger(t)
	Close()
	Warn("after close %s", "ok")
}
