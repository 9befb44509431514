package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogLevelDiscordColor(t *testing.T) {
	if LevelCritical.DiscordColor() != 0xFF0000 {
		t.Errorf("LevelCritical.DiscordColor() = %#x, want %#x", LevelCritical.DiscordColor(), 0xFF0000)
	}
	if LevelError.DiscordColor() != 0xFF0000 {
		t.Errorf("LevelError.DiscordColor() = %#x, want %#x", LevelError.DiscordColor(), 0xFF0000)
	}
	if LevelSuccess.DiscordColor() != 0x00FF00 {
		t.Errorf("LevelSuccess.DiscordColor() = %#x, want %#x", LevelSuccess.DiscordColor(), 0x00FF00)
	}
}

func TestNewLoggerCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(oldWd)

	l := NewLogger("", "")
	defer l.Close()

	l.Info("hello from the test", "Test")
	l.Error("an error line", "Test")

	combined, err := os.ReadFile(filepath.Join(dir, "logs", "combined.log"))
	if err != nil {
		t.Fatalf("combined.log not created: %v", err)
	}
	if !strings.Contains(string(combined), "hello from the test") {
		t.Error("combined.log does not contain the info message")
	}
	if !strings.Contains(string(combined), "[INFO] [Test]") {
		t.Error("combined.log does not contain the level/prefix tags")
	}

	errLog, err := os.ReadFile(filepath.Join(dir, "logs", "error.log"))
	if err != nil {
		t.Fatalf("error.log not created: %v", err)
	}
	if !strings.Contains(string(errLog), "an error line") {
		t.Error("error.log does not contain the error message")
	}
	if strings.Contains(string(errLog), "hello from the test") {
		t.Error("error.log should not contain info-level messages")
	}
}

func TestGetReturnsSameInstance(t *testing.T) {
	l1 := Get()
	l2 := Get()
	if l1 != l2 {
		t.Error("Get() should return the same logger on subsequent calls")
	}
}
