package report

// Severity classifies an Event.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single structured progress or error message.
// Context carries free-form key/value detail (paths, rates, reasons).
type Event struct {
	Severity Severity
	Message  string
	Context  map[string]string
}

// Reporter is the sink the orchestrator posts events to.
// Implementations must be safe for use from a single goroutine; the
// mirroring core drives one logical worker and never reports concurrently.
type Reporter interface {
	Report(e Event)
}

type nop struct{}

func (nop) Report(Event) {}

// Nop returns a Reporter that discards every event.
func Nop() Reporter { return nop{} }
