// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming Source abstraction, the decoder
// registry, and the converter that reshapes decoded audio into the
// SP-404 MKII import format.
//
// Decoded audio flows as interleaved float32 samples in [-1, 1]. The
// Converter drains a Source and produces 16-bit PCM at the nearest
// supported sample rate:
//
//	conv := audio.NewConverter()
//	pcm, err := conv.Convert(src)
//	// pcm.Samples is []int16 at 44100 or 48000 Hz
//
// Conversion applies, in order: target-rate selection, channel-aligned
// cubic resampling, the configured channel policy, peak normalization to
// 0.95 of full scale, and quantization to signed 16-bit.
package audio
