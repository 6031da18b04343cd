package blush

import (
	"errors"
	"fmt"
	"reflect"
)

// errNoDefault is the cause reported when a selector type cannot be
// constructed without arguments.
var errNoDefault = errors.New("interface type has no default construction")

// ApplyTransform instantiates the transform X and applies it to c.
//
// X is constructed from its zero value; pointer types get a freshly
// allocated element. If the instance implements Initializer, Init runs
// before the transform. Construction failures are reported as
// *ResolutionError.
//
// Example:
//
//	darker, err := blush.ApplyTransform[blush.Darken](blush.White, 0.5)
func ApplyTransform[X Transform[T], T any](c Color, value T) (Color, error) {
	x, err := instantiate[X](typeName[X]())
	if err != nil {
		return Color{}, err
	}
	return x.Transform(c, value), nil
}

// ApplyConverter instantiates the converter X and applies it to c.
// Construction follows the same rules as ApplyTransform.
//
// Example:
//
//	hsb, err := blush.ApplyConverter[blush.HSLConverter, blush.HSLColorModel](blush.Red)
func ApplyConverter[X Converter[M], M ColorModel](c Color) (M, error) {
	x, err := instantiate[X](typeName[X]())
	if err != nil {
		var zero M
		return zero, err
	}
	return x.Convert(c), nil
}

// instantiate builds a default instance of X. A panic raised while doing so
// is recovered and reported as a *ResolutionError for kind.
func instantiate[X any](kind string) (x X, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &ResolutionError{Kind: kind, Err: fmt.Errorf("panic during construction: %v", p)}
		}
	}()

	switch t := reflect.TypeFor[X](); t.Kind() {
	case reflect.Interface:
		return x, &ResolutionError{Kind: kind, Err: errNoDefault}
	case reflect.Pointer:
		x = reflect.New(t.Elem()).Interface().(X)
	}

	if in, ok := any(x).(Initializer); ok {
		if ierr := in.Init(); ierr != nil {
			return x, &ResolutionError{Kind: kind, Err: ierr}
		}
	}
	return x, nil
}

// typeName returns the Go type name of X, used as the kind of
// type-selected transforms and converters.
func typeName[X any]() string {
	return reflect.TypeFor[X]().String()
}
