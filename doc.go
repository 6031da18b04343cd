// Package blush provides an immutable RGBA color value and a small
// extension mechanism for converting colors to other color models and
// transforming them into new colors.
//
// # Overview
//
// A [Color] packs four 8-bit channels into 32 bits
// (alpha<<24 | red<<16 | green<<8 | blue). Colors are values: they are
// never modified after construction and compare with ==.
//
//	import "github.com/gogpu/blush"
//
//	c, err := blush.New(255, 128, 0)       // opaque, validated
//	c, err = blush.NewFloat(1, 0.5, 0)     // unit floats, validated
//	c = blush.FromPacked(0x80FF8000)       // raw bits, not validated
//
// Validating constructors report every out-of-range channel at once in a
// [*RangeError].
//
// # Transforms and converters
//
// A [Transform] makes a new Color from a color and a parameter; a
// [Converter] turns a color into another [ColorModel]. The set is open:
// any type with the right method can be used.
//
// Implementations are selected either by type, with generics:
//
//	darker, err := blush.ApplyTransform[blush.Darken](blush.White, 0.5)
//	hsb, err := blush.ApplyConverter[blush.HSLConverter, blush.HSLColorModel](blush.Red)
//
// or by name, through a [Registry]:
//
//	darker, err := blush.White.Transform(blush.KindDarken, 0.5)
//	model, err := blush.Red.Convert(blush.KindHSL)
//
// In both cases the implementation is constructed with no arguments on
// every use. Construction failures are reported as [*ResolutionError].
//
// # Logging
//
// blush is silent by default. See [SetLogger].
//
// # Non-goals
//
// blush does not manage color spaces (gamuts, ICC profiles, linear versus
// gamma-encoded math), does not process images, and does not parse
// textual color formats.
package blush

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
