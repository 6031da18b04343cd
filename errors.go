package blush

import (
	"errors"
	"strings"
)

// Sentinel errors for the blush package.
var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("blush: color parameter outside of expected range")

	// ErrNotRegistered is returned when a kind name has no registered
	// transform or converter.
	ErrNotRegistered = errors.New("blush: kind not registered")

	// ErrInvalidParameter is returned when a registry transform receives a
	// parameter whose type does not match the transform.
	ErrInvalidParameter = errors.New("blush: invalid transform parameter")
)

// Channel identifies one of the four color channels.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "Red"
	case ChannelGreen:
		return "Green"
	case ChannelBlue:
		return "Blue"
	case ChannelAlpha:
		return "Alpha"
	default:
		return "Unknown"
	}
}

// RangeError is returned by validating constructors when one or more
// channel arguments fall outside their legal range. Channels lists every
// offending channel, in red, green, blue, alpha order.
type RangeError struct {
	Channels []Channel
}

func (e *RangeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrOutOfRange.Error())
	b.WriteByte(':')
	for _, ch := range e.Channels {
		b.WriteByte(' ')
		b.WriteString(ch.String())
	}
	return b.String()
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Has reports whether ch is among the offending channels.
func (e *RangeError) Has(ch Channel) bool {
	for _, c := range e.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// ResolutionError is returned when a transform or converter selected by
// kind cannot be instantiated. Err holds the underlying cause.
type ResolutionError struct {
	Kind string
	Err  error
}

func (e *ResolutionError) Error() string {
	return "blush: cannot resolve " + e.Kind + ": " + e.Err.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
