// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"sp404prep/utils"
)

// Resample converts interleaved samples from srcRate to dstRate using
// Catmull-Rom cubic interpolation. Channels are processed channel-major so
// they stay time-aligned, and the output length is exactly
// round(frames * dstRate / srcRate) frames.
func Resample(samples []float32, channels, srcRate, dstRate int) []float32 {
	if srcRate == dstRate || len(samples) == 0 {
		return samples
	}

	frames := len(samples) / channels
	outFrames := int(math.Round(float64(frames) * float64(dstRate) / float64(srcRate)))
	if outFrames == 0 {
		return nil
	}

	// step is how far the read position advances per output frame,
	// measured in source frames.
	step := float64(srcRate) / float64(dstRate)
	out := make([]float32, outFrames*channels)

	for c := 0; c < channels; c++ {
		for i := 0; i < outFrames; i++ {
			pos := float64(i) * step
			base := int(pos)
			frac := float32(pos - float64(base))

			y0 := frameSample(samples, channels, frames, base-1, c)
			y1 := frameSample(samples, channels, frames, base, c)
			y2 := frameSample(samples, channels, frames, base+1, c)
			y3 := frameSample(samples, channels, frames, base+2, c)

			out[i*channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return out
}

// frameSample reads channel c of frame idx, clamping idx to the valid range
// so edge frames are duplicated for interpolation.
func frameSample(samples []float32, channels, frames, idx, c int) float32 {
	if idx < 0 {
		idx = 0
	} else if idx >= frames {
		idx = frames - 1
	}
	return samples[idx*channels+c]
}
