// SPDX-License-Identifier: EPL-2.0

// Package naming maps arbitrary file and directory names onto the
// restricted character set the SP-404 MKII accepts on its SD card.
//
// Names are reduced to `[a-zA-Z0-9_]` plus a lowercase extension:
//
//	naming.Normalize("Dusty Loop (94bpm).wav", 0) // "Dusty_Loop_94bpm.wav"
//	naming.Normalize("Кириллица.wav", 0)          // "unnamed.wav"
//	naming.Normalize("kick.wav", 2)               // "kick_002.wav"
//
// Accented Latin letters survive via NFKD decomposition (the combining
// marks are stripped); non-Latin scripts are removed entirely and fall
// back to the literal "unnamed".
//
// The counter argument is the caller's collision-avoidance tool: the
// function appends it verbatim when positive and performs no collision
// detection of its own.
package naming
