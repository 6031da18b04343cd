package blush

import (
	"fmt"
	"image/color"

	"github.com/gogpu/blush/internal/channel"
)

// Color is an immutable 8-bit RGBA color packed into 32 bits as
// alpha<<24 | red<<16 | green<<8 | blue.
//
// Two colors are equal (==) exactly when their packed values are equal.
// The zero Color is transparent black.
type Color struct {
	v uint32
}

// Verify at compile time that Color satisfies both color interfaces.
var (
	_ ColorModel  = Color{}
	_ color.Color = Color{}
)

// New creates an opaque color from red, green and blue components in the
// range [0, 255]. It returns a *RangeError naming every component that is
// out of range.
func New(r, g, b int) (Color, error) {
	return NewRGBA(r, g, b, channel.Max)
}

// NewRGBA creates a color from red, green, blue and alpha components in
// the range [0, 255]. It returns a *RangeError naming every component that
// is out of range.
func NewRGBA(r, g, b, a int) (Color, error) {
	c, err := checkInts(r, g, b, a)
	if err != nil {
		return Color{}, err
	}
	return Color{v: channel.Pack(c[0], c[1], c[2], c[3])}, nil
}

// MustNew is like New but panics if a component is out of range.
func MustNew(r, g, b int) Color {
	c, err := New(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// MustNewRGBA is like NewRGBA but panics if a component is out of range.
func MustNewRGBA(r, g, b, a int) Color {
	c, err := NewRGBA(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

// FromPacked creates a color from a combined value with alpha in bits
// 24-31, red in bits 16-23, green in bits 8-15 and blue in bits 0-7.
// Every bit pattern is accepted.
func FromPacked(rgba uint32) Color {
	return Color{v: rgba}
}

// NewFloat creates an opaque color from red, green and blue components in
// the range [0.0, 1.0]. Each component is mapped to [0, 255] by adding 0.5
// to channel*255 and truncating.
func NewFloat(r, g, b float64) (Color, error) {
	return NewFloatRGBA(r, g, b, 1)
}

// NewFloatRGBA creates a color from red, green, blue and alpha components
// in the range [0.0, 1.0]. The float inputs are validated before
// conversion; the returned *RangeError names every offending component.
func NewFloatRGBA(r, g, b, a float64) (Color, error) {
	if err := checkFloats(r, g, b, a); err != nil {
		return Color{}, err
	}
	return NewRGBA(channel.FromUnit(r), channel.FromUnit(g), channel.FromUnit(b), channel.FromUnit(a))
}

// FromColor converts a standard color.Color to a Color.
// Alpha-premultiplied components are converted back to straight alpha.
func FromColor(c color.Color) Color {
	n, ok := c.(color.NRGBA)
	if !ok {
		n = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return Color{v: channel.Pack(n.R, n.G, n.B, n.A)}
}

// Red returns the red component in the range 0-255.
func (c Color) Red() uint8 {
	return channel.Extract(c.v, channel.ShiftRed)
}

// Green returns the green component in the range 0-255.
func (c Color) Green() uint8 {
	return channel.Extract(c.v, channel.ShiftGreen)
}

// Blue returns the blue component in the range 0-255.
func (c Color) Blue() uint8 {
	return channel.Extract(c.v, channel.ShiftBlue)
}

// Alpha returns the alpha component in the range 0-255.
func (c Color) Alpha() uint8 {
	return channel.Extract(c.v, channel.ShiftAlpha)
}

// Packed returns the combined 32-bit value
// (bits 24-31 alpha, 16-23 red, 8-15 green, 0-7 blue).
func (c Color) Packed() uint32 {
	return c.v
}

// RGBA implements color.Color. It returns alpha-premultiplied components
// in the range [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := channel.Unpack(c.v)
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// WithAlpha returns a copy of c with its alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	r, g, b, _ := channel.Unpack(c.v)
	return Color{v: channel.Pack(r, g, b, a)}
}

// Equal reports whether c and other have the same packed value.
func (c Color) Equal(other Color) bool {
	return c.v == other.v
}

// String returns a debug representation of c. The format is not stable.
func (c Color) String() string {
	return fmt.Sprintf("blush.Color[r=%d,g=%d,b=%d,a=%d]", c.Red(), c.Green(), c.Blue(), c.Alpha())
}

// opaque builds a named color. Arguments are always in range.
func opaque(r, g, b uint8) Color {
	return Color{v: channel.Pack(r, g, b, channel.Max)}
}

// Common colors
var (
	White     = opaque(255, 255, 255)
	LightGray = opaque(192, 192, 192)
	Gray      = opaque(128, 128, 128)
	DarkGray  = opaque(64, 64, 64)
	Black     = opaque(0, 0, 0)
	Red       = opaque(255, 0, 0)
	Pink      = opaque(255, 175, 175)
	Orange    = opaque(255, 200, 0)
	Yellow    = opaque(255, 255, 0)
	Green     = opaque(0, 255, 0)
	Magenta   = opaque(255, 0, 255)
	Cyan      = opaque(0, 255, 255)
	Blue      = opaque(0, 0, 255)
)
