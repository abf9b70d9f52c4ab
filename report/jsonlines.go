package report

import (
	"encoding/json"
	"io"
	"time"
)

// jsonEvent is the wire format for machine-readable output: one JSON object
// per line, suitable for scripting around the CLI.
type jsonEvent struct {
	Timestamp string            `json:"timestamp"`
	Severity  string            `json:"severity"`
	Message   string            `json:"message"`
	Context   map[string]string `json:"context,omitempty"`
}

// JSONLines emits events as newline-delimited JSON.
type JSONLines struct {
	enc     *json.Encoder
	now     func() time.Time
	dropped int
}

// NewJSONLines creates a JSON-lines reporter writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (j *JSONLines) Report(e Event) {
	err := j.enc.Encode(jsonEvent{
		Timestamp: j.now().Format(time.RFC3339Nano),
		Severity:  e.Severity.String(),
		Message:   e.Message,
		Context:   e.Context,
	})
	if err != nil {
		j.dropped++
	}
}

// Dropped returns the number of events that could not be written. The
// Reporter interface gives Report no error path, so callers that care
// about a broken sink check this after the run.
func (j *JSONLines) Dropped() int { return j.dropped }
