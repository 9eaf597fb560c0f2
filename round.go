package cv

import "math"

// clampRound converts an accumulated sample to a byte.
//
// The value is clamped to [0, 255] and then rounded to nearest with ties
// away from zero. NaN maps to 0. Every convolution path uses this function
// so full, separable, sequential and parallel results agree bit for bit
// on identical sums.
func clampRound(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	// Rounded in float64: v+0.5 in float32 can carry up to the next integer.
	return uint8(math.Round(float64(v)))
}
