// SPDX-License-Identifier: EPL-2.0

package mirror

// State is the lifecycle phase of a run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RunResult summarizes one mirroring run.
type RunResult struct {
	State State

	// Converted counts files transcoded and written to the destination.
	Converted int
	// SkippedFiles counts files passed over because no decoder claims
	// their extension.
	SkippedFiles int
	// FailedFiles counts files that qualified but could not be fetched,
	// decoded, converted or written.
	FailedFiles int
	// SkippedDirs counts subtrees abandoned because their directory
	// could not be listed or created.
	SkippedDirs int

	// Err holds the fault that stopped the run early. Nil unless State
	// is StateFailed or StateCancelled.
	Err error
}

// Success reports whether the run visited the whole tree.
// Per-file and per-subtree faults do not make a run unsuccessful; only
// cancellation or a root-level fault does.
func (r RunResult) Success() bool { return r.State == StateCompleted }
