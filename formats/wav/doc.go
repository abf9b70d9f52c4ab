// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and 16-bit PCM encoding.
//
// Decoding goes through github.com/go-audio/wav, which walks RIFF chunks
// properly instead of assuming the canonical 44-byte header, so files with
// LIST/INFO metadata chunks decode fine. PCM at 8, 16, 24 and 32 bits is
// accepted; samples come out as float32 in [-1, 1] via the audio.Source
// interface.
//
// Encoding is write-once:
//
//	err := wav.WritePCM16(f, 48000, 2, samples)
//
// which emits a complete RIFF/WAVE file with interleaved signed 16-bit
// samples, the only output format the SP-404 MKII import accepts.
package wav
