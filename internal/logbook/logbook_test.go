package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kingrea/emis-dashboard/internal/store"
)

func newBook(t *testing.T) *Logbook {
	t.Helper()
	book, err := New(filepath.Join(t.TempDir(), "logs", "actions.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.clock = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return book
}

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	book := newBook(t)
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestTailOnMissingFile(t *testing.T) {
	book := newBook(t)
	lines, total := book.Tail(10)
	if lines != nil || total != 0 {
		t.Fatalf("expected empty tail, got %v (%d)", lines, total)
	}
}

func TestRecordJournalsActions(t *testing.T) {
	book := newBook(t)
	book.Record(store.Action{})
	book.Record(store.WithPage("GET_ALERTS_SUCCESS", nil, 2, 40))
	book.Record(store.Plain("GET_ALERTS_START"))
	book.Record(store.Failure("GET_PLANS_ERROR", store.ErrorObject{Status: 503, Message: "Service Unavailable"}))

	lines, total := book.Tail(10)
	if total != 4 {
		t.Fatalf("total = %d, want 4: %v", total, lines)
	}
	want := []string{
		"2024-03-01T08:00:00Z INFO  <null>",
		"2024-03-01T08:00:00Z INFO  GET_ALERTS_SUCCESS page=2 total=40",
		"2024-03-01T08:00:00Z INFO  GET_ALERTS_START",
		"2024-03-01T08:00:00Z ERROR GET_PLANS_ERROR 503 Service Unavailable",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Record(store.Plain("GET_PLANS_START"))
	book.Warn("ignored")
	if lines, total := book.Tail(1); lines != nil || total != 0 {
		t.Fatalf("nil tail = %v, %d", lines, total)
	}
}
