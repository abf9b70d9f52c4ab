package utils

import "math"

// Float32ToInt16 quantizes a float32 sample in [-1, 1] to signed 16-bit PCM.
// Values outside the range are clamped first, then rounded to the nearest
// integer step of the 32767 scale.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(math.Round(float64(x) * 32767.0))
}
