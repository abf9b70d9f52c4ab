// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF streams into the audio.Source interface.
//
// This package uses github.com/go-audio/aiff. Like the wav package it
// normalizes 8, 16, 24 and 32 bit integer samples to float32 in [-1, 1].
// AIFF input is opt-in: the default import registry qualifies only WAV
// files.
package aiff
