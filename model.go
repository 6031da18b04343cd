package blush

// ColorModel is the minimal capability of any color-like value: access to
// its red, green, blue and alpha components in the range 0-255.
type ColorModel interface {
	Red() uint8
	Green() uint8
	Blue() uint8
	Alpha() uint8
}

// HSLColorModel is a ColorModel that also exposes hue, saturation and
// brightness, each in the range [0.0, 1.0].
type HSLColorModel interface {
	ColorModel
	Hue() float64
	Saturation() float64
	Brightness() float64
}

// Transform produces a new Color from c and an auxiliary value of type T.
//
// Implementations must be usable as their zero value (or, for pointer
// types, a pointer to a zero value) so they can be selected by type.
// An implementation that needs setup can implement Initializer.
type Transform[T any] interface {
	Transform(c Color, value T) Color
}

// Converter produces a value of another color model from c.
//
// The same construction rules as for Transform apply.
type Converter[M ColorModel] interface {
	Convert(c Color) M
}

// Initializer is implemented by transforms and converters that must be
// prepared after construction. An Init error makes resolution fail.
type Initializer interface {
	Init() error
}
