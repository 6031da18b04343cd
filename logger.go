package blush

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// nopLogger is the default, silent logger.
var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger. Nil means nopLogger.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by blush.
// By default, blush produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by blush:
//   - [slog.LevelDebug]: registry changes and failed dispatches
//
// Example:
//
//	blush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the current logger used by blush.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
