// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into the audio.Source interface.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Decoded output is always 44.1kHz stereo 16-bit PCM, which the converter
// then reshapes like any other source. MP3 input is opt-in: the default
// import registry qualifies only WAV files.
package mp3
