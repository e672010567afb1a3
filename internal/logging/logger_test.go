package logging

import (
	"os"
	"strings"
	"testing"
)

func TestPrintfAppendsTimestampedLines(t *testing.T) {
	projectDir := t.TempDir()
	l, err := New(projectDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Printf("api: GET %s -> %d\n", "/alerts", 200)
	l.Printf("inspect: listening on %s", "127.0.0.1:8766")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "api: GET /alerts -> 200") {
		t.Fatalf("unexpected line %q", lines[0])
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Printf("ignored")
	if err := l.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
