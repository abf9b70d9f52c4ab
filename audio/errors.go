// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidStream  = errors.New("source reports no channels or a non-positive sample rate")
	ErrNoTargetRates  = errors.New("no supported target rates configured")
	ErrInvalidSamples = errors.New("interleaved sample count must be a multiple of channels")
)
