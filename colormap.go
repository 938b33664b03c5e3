package main

import "math"

// Tone map names accepted in tuning.
const (
	toneMapClamp = "clamp"
	toneMapTanh  = "tanh"
)

// toneMapFunc turns a signed field sample into a grayscale brightness.
type toneMapFunc func(f float64) byte

// clampChannel bounds an arbitrary channel value to the displayable range.
func clampChannel(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// clampToneMap maps field magnitude to darkness over a fixed linear range.
// Bright background, dark wavefronts.
func clampToneMap(gain float64) toneMapFunc {
	return func(f float64) byte {
		v := f * gain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		return clampChannel(255 - math.Abs(v)*200)
	}
}

// tanhToneMap saturates smoothly, which keeps wavefront edges crisp without a
// hard clip band.
func tanhToneMap(gain float64) toneMapFunc {
	return func(f float64) byte {
		return clampChannel(255 - math.Abs(math.Tanh(f*gain))*255)
	}
}

// selectToneMap resolves a tuning tone map name. Tuning validation guarantees
// the name is known, so the fallback is just a safe default.
func selectToneMap(name string, gain float64) toneMapFunc {
	if name == toneMapTanh {
		return tanhToneMap(gain)
	}
	return clampToneMap(gain)
}

// interferenceBrightness normalizes a superposed sum of n unit sources to
// [0, 255]. Extreme constructive interference still clamps cleanly.
func interferenceBrightness(sum float64, n int) byte {
	if n < 1 {
		n = 1
	}
	return clampChannel((sum/float64(n) + 1) / 2 * 255)
}
