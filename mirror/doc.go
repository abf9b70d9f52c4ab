// SPDX-License-Identifier: EPL-2.0

// Package mirror walks a source sample tree and writes a sampler-ready
// copy: every name normalized to the import charset, every qualifying
// audio file transcoded to 16-bit PCM at a supported rate.
//
// A run is driven by a single worker so that per-directory rename
// counters and report ordering stay deterministic. Failures are isolated
// by scope: a broken file skips that file, an unreadable directory skips
// that subtree, and only root-level preconditions fail the run.
package mirror
