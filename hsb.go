package blush

import "github.com/gogpu/blush/internal/channel"

// KindHSL is the registry name of HSLConverter.
const KindHSL = "hsl"

// HSB is a snapshot of a color in the hue/saturation/brightness model.
// It keeps the source color's components so it can be read back as a
// ColorModel. Values are computed once, at conversion time.
type HSB struct {
	R, G, B, A uint8

	// H, S and V are hue, saturation and brightness in [0, 1].
	H, S, V float64
}

var _ HSLColorModel = HSB{}

func (h HSB) Red() uint8          { return h.R }
func (h HSB) Green() uint8        { return h.G }
func (h HSB) Blue() uint8         { return h.B }
func (h HSB) Alpha() uint8        { return h.A }
func (h HSB) Hue() float64        { return h.H }
func (h HSB) Saturation() float64 { return h.S }
func (h HSB) Brightness() float64 { return h.V }

// HSLConverter converts a Color to the hue/saturation/brightness model.
// The result is an HSB value.
type HSLConverter struct{}

var _ Converter[HSLColorModel] = HSLConverter{}

// Convert implements Converter.
func (HSLConverter) Convert(c Color) HSLColorModel {
	return ToHSB(c)
}

// ToHSB converts c to an HSB snapshot.
func ToHSB(c Color) HSB {
	r, g, b, a := channel.Unpack(c.v)
	h, s, v := RGBToHSB(r, g, b)
	return HSB{R: r, G: g, B: b, A: a, H: h, S: s, V: v}
}

// RGBToHSB converts red, green and blue components to hue, saturation and
// brightness, each in [0, 1].
//
// Gray inputs (r == g == b) have zero hue and saturation. When several
// components share the maximum, red takes precedence over green, and green
// over blue.
func RGBToHSB(r, g, b uint8) (hue, saturation, brightness float64) {
	cmax := max(r, g, b)
	cmin := min(r, g, b)

	brightness = channel.ToUnit(cmax)
	if cmax != 0 {
		saturation = float64(cmax-cmin) / float64(cmax)
	}
	if saturation == 0 {
		return 0, saturation, brightness
	}

	span := float64(cmax - cmin)
	redc := float64(cmax-r) / span
	greenc := float64(cmax-g) / span
	bluec := float64(cmax-b) / span
	switch cmax {
	case r:
		hue = bluec - greenc
	case g:
		hue = 2 + redc - bluec
	default:
		hue = 4 + greenc - redc
	}
	hue /= 6
	if hue < 0 {
		hue++
	}
	return hue, saturation, brightness
}
