// Package channel provides the 8-bit channel arithmetic behind blush colors:
// packing four channels into a 32-bit word, narrowing integers into the
// [0,255] range, and mapping unit floats to bytes.
package channel

import "fortio.org/safecast"

// Bit offsets of each channel inside a packed value.
// Layout: alpha<<24 | red<<16 | green<<8 | blue.
const (
	ShiftAlpha = 24
	ShiftRed   = 16
	ShiftGreen = 8
	ShiftBlue  = 0
)

// Max is the largest value an 8-bit channel can hold.
const Max = 255

// Pack combines four channels into a single 32-bit value.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<ShiftAlpha |
		uint32(r)<<ShiftRed |
		uint32(g)<<ShiftGreen |
		uint32(b)<<ShiftBlue
}

// Extract returns the channel stored at the given bit offset.
func Extract(v uint32, shift uint) uint8 {
	//nolint:gosec // G115: masked to 8 bits
	return uint8((v >> shift) & 0xFF)
}

// Unpack splits a packed value into its four channels.
func Unpack(v uint32) (r, g, b, a uint8) {
	return Extract(v, ShiftRed), Extract(v, ShiftGreen), Extract(v, ShiftBlue), Extract(v, ShiftAlpha)
}

// Narrow converts v to a channel value.
// It reports false when v lies outside [0,255].
func Narrow(v int) (uint8, bool) {
	c, err := safecast.Convert[uint8](v)
	if err != nil {
		return 0, false
	}
	return c, true
}
