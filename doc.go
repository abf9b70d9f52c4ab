// SPDX-License-Identifier: EPL-2.0

// Package sp404prep prepares sample libraries for import into the Roland
// SP-404 MKII: it mirrors a source tree into a destination tree, renaming
// every entry to the sampler's `[a-zA-Z0-9_]` charset and transcoding
// every qualifying audio file to 16-bit PCM WAV at 44100 or 48000 Hz.
//
// The root package offers one-call helpers over the building blocks in
// the subpackages: naming (rename algorithm), audio (conversion engine),
// formats (decoders and the WAV writer), source (local and SMB
// providers), mirror (the tree orchestrator) and report (event sinks).
package sp404prep
