package blush

import "github.com/gogpu/blush/internal/channel"

// KindDarken is the registry name of Darken.
const KindDarken = "darken"

// Darken darkens a color by a fraction: each of red, green and blue is
// multiplied by (1 - value), rounded and clamped into [0, 255]. Alpha is
// kept. value is normally in [0, 1] but is not checked; 0 leaves the
// color unchanged and 1 yields black.
//
// Example:
//
//	c, _ := blush.ApplyTransform[blush.Darken](blush.White, 0.5)
//	// c == blush.MustNew(128, 128, 128)
type Darken struct{}

var _ Transform[float64] = Darken{}

// Transform implements Transform.
func (Darken) Transform(c Color, value float64) Color {
	k := 1 - value
	r, g, b, a := channel.Unpack(c.v)
	return Color{v: channel.Pack(channel.Scale(r, k), channel.Scale(g, k), channel.Scale(b, k), a)}
}
