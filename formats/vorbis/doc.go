// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into the audio.Source interface.
//
// This package uses github.com/jfreymuth/oggvorbis, which yields float32
// samples directly, so no integer normalization step is needed. Vorbis input
// is opt-in: the default import registry qualifies only WAV files.
package vorbis
