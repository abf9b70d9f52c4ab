package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConsole_PlainMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Report(Event{Severity: Info, Message: "run started"})

	got := buf.String()
	if got != "[info] run started\n" {
		t.Errorf("Console output = %q, want %q", got, "[info] run started\n")
	}
}

func TestConsole_ContextSortedAndAppended(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Report(Event{
		Severity: Warn,
		Message:  "file skipped",
		Context: map[string]string{
			"path":   "/a/b.wav",
			"reason": "decode",
		},
	})

	got := buf.String()
	want := "[warn] file skipped (path=/a/b.wav reason=decode)\n"
	if got != want {
		t.Errorf("Console output = %q, want %q", got, want)
	}
}

func TestJSONLines_EmitsValidJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	j := NewJSONLines(&buf)
	j.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	j.Report(Event{Severity: Error, Message: "boom", Context: map[string]string{"path": "x"}})

	line := strings.TrimSpace(buf.String())
	var decoded jsonEvent
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, line)
	}

	if decoded.Severity != "error" {
		t.Errorf("severity = %q, want %q", decoded.Severity, "error")
	}
	if decoded.Message != "boom" {
		t.Errorf("message = %q, want %q", decoded.Message, "boom")
	}
	if decoded.Context["path"] != "x" {
		t.Errorf("context = %v, want path=x", decoded.Context)
	}
	if decoded.Timestamp != "2026-03-01T12:00:00Z" {
		t.Errorf("timestamp = %q", decoded.Timestamp)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink gone") }

func TestJSONLines_CountsDroppedEvents(t *testing.T) {
	t.Parallel()

	j := NewJSONLines(failingWriter{})

	j.Report(Event{Severity: Info, Message: "one"})
	j.Report(Event{Severity: Info, Message: "two"})

	if got := j.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}

	var buf bytes.Buffer
	ok := NewJSONLines(&buf)
	ok.Report(Event{Severity: Info, Message: "fine"})
	if got := ok.Dropped(); got != 0 {
		t.Errorf("Dropped() = %d on a healthy sink, want 0", got)
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sev  Severity
		want string
	}{
		{Info, "info"},
		{Warn, "warn"},
		{Error, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestNop_DiscardsEvents(t *testing.T) {
	t.Parallel()

	// Must not panic, nothing observable
	Nop().Report(Event{Severity: Info, Message: "ignored"})
}
