package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "warn" {
		t.Errorf("expected 'warn', got %q", LevelWarn.String())
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)

	logger.Info("hidden message")
	logger.Warn("boxes unplaced", "count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "boxes unplaced") || !strings.Contains(out, "count=3") {
		t.Errorf("expected warn message with attributes, got: %s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no colour codes for a non-terminal writer: %q", out)
	}
}

func TestIsTerminal_RegularFileAndBuffer(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	if err != nil {
		t.Fatalf("create log file: %v", err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Error("expected a regular file not to be a terminal")
	}
	if isTerminal(&bytes.Buffer{}) {
		t.Error("expected a buffer not to be a terminal")
	}

	NewLogger(f, LevelInfo).Info("written to file")
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Errorf("expected no colour codes in a log file: %q", data)
	}
}
