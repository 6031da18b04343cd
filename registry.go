package blush

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
)

// TransformFunc applies a registered transform to c.
// value is checked against the transform's parameter type at call time.
type TransformFunc func(c Color, value any) (Color, error)

// ConverterFunc applies a registered converter to c.
type ConverterFunc func(c Color) (ColorModel, error)

// Registry maps kind names to transforms and converters.
// Transforms and converters live in separate namespaces.
//
// A Registry is safe for concurrent use. The zero value is not usable;
// create one with NewRegistry.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]TransformFunc
	converters map[string]ConverterFunc
	log        *slog.Logger
}

// NewRegistry returns a registry configured by opts. Without options the
// registry is empty.
func NewRegistry(opts ...RegistryOption) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		transforms: make(map[string]TransformFunc),
		converters: make(map[string]ConverterFunc),
		log:        o.logger,
	}
	if o.builtins {
		RegisterTransform[Darken, float64](r, KindDarken)
		RegisterConverter[HSLConverter, HSLColorModel](r, KindHSL)
	}
	return r
}

// defaultRegistry backs Color.Transform and Color.Convert.
var defaultRegistry = NewRegistry(WithBuiltins())

// Default returns the process-wide registry used by Color.Transform and
// Color.Convert. It comes with KindDarken and KindHSL registered; callers
// may register their own kinds at init time.
func Default() *Registry {
	return defaultRegistry
}

// RegisterTransform registers the transform type X under name.
// A fresh X is constructed on every use, as in ApplyTransform.
// If name is already registered as a transform, it is replaced.
//
// Example:
//
//	blush.RegisterTransform[Invert, struct{}](blush.Default(), "invert")
func RegisterTransform[X Transform[T], T any](r *Registry, name string) {
	r.SetTransform(name, func(c Color, value any) (Color, error) {
		x, err := instantiate[X](name)
		if err != nil {
			return Color{}, err
		}
		v, ok := value.(T)
		if !ok {
			return Color{}, fmt.Errorf("%w: %s takes %v, got %T", ErrInvalidParameter, name, reflect.TypeFor[T](), value)
		}
		return x.Transform(c, v), nil
	})
}

// RegisterConverter registers the converter type X under name.
// A fresh X is constructed on every use, as in ApplyConverter.
// If name is already registered as a converter, it is replaced.
func RegisterConverter[X Converter[M], M ColorModel](r *Registry, name string) {
	r.SetConverter(name, func(c Color) (ColorModel, error) {
		x, err := instantiate[X](name)
		if err != nil {
			return nil, err
		}
		return x.Convert(c), nil
	})
}

// SetTransform registers fn as the transform for name.
func (r *Registry) SetTransform(name string, fn TransformFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transforms[name] = fn
	r.logger().Debug("blush: transform registered", "kind", name)
}

// SetConverter registers fn as the converter for name.
func (r *Registry) SetConverter(name string, fn ConverterFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[name] = fn
	r.logger().Debug("blush: converter registered", "kind", name)
}

// Unregister removes name from both the transforms and the converters.
// This is useful for testing.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.transforms, name)
	delete(r.converters, name)
}

// Transforms returns the registered transform names in sorted order.
func (r *Registry) Transforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.transforms)
}

// Converters returns the registered converter names in sorted order.
func (r *Registry) Converters() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.converters)
}

// IsRegistered reports whether name is registered as a transform or a
// converter.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, t := r.transforms[name]
	_, c := r.converters[name]
	return t || c
}

// Transform resolves the transform registered as kind and applies it to c.
func (r *Registry) Transform(c Color, kind string, value any) (Color, error) {
	r.mu.RLock()
	fn, ok := r.transforms[kind]
	r.mu.RUnlock()
	if !ok {
		return Color{}, r.dispatchFailed(kind, &ResolutionError{Kind: kind, Err: ErrNotRegistered})
	}
	out, err := fn(c, value)
	if err != nil {
		return Color{}, r.dispatchFailed(kind, err)
	}
	return out, nil
}

// Convert resolves the converter registered as kind and applies it to c.
func (r *Registry) Convert(c Color, kind string) (ColorModel, error) {
	r.mu.RLock()
	fn, ok := r.converters[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, r.dispatchFailed(kind, &ResolutionError{Kind: kind, Err: ErrNotRegistered})
	}
	m, err := fn(c)
	if err != nil {
		return nil, r.dispatchFailed(kind, err)
	}
	return m, nil
}

// dispatchFailed logs a failed dispatch and returns err unchanged.
func (r *Registry) dispatchFailed(kind string, err error) error {
	r.logger().Debug("blush: dispatch failed", "kind", kind, "err", err)
	return err
}

func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return Logger()
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Transform resolves the transform registered as kind in the default
// registry and applies it to c with value.
//
// Example:
//
//	darker, err := blush.White.Transform(blush.KindDarken, 0.5)
func (c Color) Transform(kind string, value any) (Color, error) {
	return defaultRegistry.Transform(c, kind, value)
}

// Convert resolves the converter registered as kind in the default
// registry and applies it to c.
//
// Example:
//
//	m, err := blush.Red.Convert(blush.KindHSL)
//	hsb := m.(blush.HSLColorModel)
func (c Color) Convert(kind string) (ColorModel, error) {
	return defaultRegistry.Convert(c, kind)
}
