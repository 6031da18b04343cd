package blush

import "log/slog"

// RegistryOption configures a Registry during creation.
//
// Example:
//
//	// Empty registry
//	r := blush.NewRegistry()
//
//	// Registry with darken and hsl, logging to its own logger
//	r := blush.NewRegistry(blush.WithBuiltins(), blush.WithLogger(l))
type RegistryOption func(*registryOptions)

// registryOptions holds optional configuration for Registry creation.
type registryOptions struct {
	builtins bool
	logger   *slog.Logger
}

// WithBuiltins registers KindDarken and KindHSL in the new registry.
func WithBuiltins() RegistryOption {
	return func(o *registryOptions) {
		o.builtins = true
	}
}

// WithLogger sets a logger for the registry. Without it the registry
// logs through the package logger (see SetLogger).
func WithLogger(l *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = l
	}
}
