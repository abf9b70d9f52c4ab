// Package report defines the reporting capability the mirroring core emits
// progress and error events through.
//
// The core never owns a log destination; callers inject a Reporter and
// decide where events go. Two sinks are provided: Console for terminals and
// JSONLines for machine-readable output, plus Nop for tests.
package report
