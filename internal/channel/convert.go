package channel

import "math"

// InUnit reports whether f lies in [0,1]. NaN is never in range.
func InUnit(f float64) bool {
	return f >= 0 && f <= 1
}

// FromUnit maps a unit float onto the [0,255] integer scale.
// The result is truncated after adding 0.5, which rounds half up for
// non-negative input. Input outside [0,1] yields a value outside [0,255];
// callers validate with InUnit first.
func FromUnit(f float64) int {
	return int(f*Max + 0.5)
}

// ToUnit maps a channel value onto [0,1].
func ToUnit(c uint8) float64 {
	return float64(c) / Max
}

// Scale multiplies c by k, rounds half away from zero and clamps the
// result into [0,255]. NaN scales to 0.
func Scale(c uint8, k float64) uint8 {
	v := math.Round(float64(c) * k)
	switch {
	case !(v > 0):
		return 0
	case v > Max:
		return Max
	}
	//nolint:gosec // G115: v is clamped to [0,255] range
	return uint8(v)
}
