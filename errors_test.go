package blush

import (
	"errors"
	"testing"
)

func TestChannelString(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{ChannelRed, "Red"},
		{ChannelGreen, "Green"},
		{ChannelBlue, "Blue"},
		{ChannelAlpha, "Alpha"},
		{Channel(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ch.String(); got != tt.want {
			t.Errorf("Channel(%d).String() = %q, want %q", uint8(tt.ch), got, tt.want)
		}
	}
}

func TestResolutionError(t *testing.T) {
	cause := errors.New("no zero value")
	err := error(&ResolutionError{Kind: "sepia", Err: cause})

	want := "blush: cannot resolve sepia: no zero value"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if errors.Is(err, ErrOutOfRange) {
		t.Error("ResolutionError matched ErrOutOfRange")
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	_, rangeErr := New(300, 0, 0)
	_, resolveErr := White.Transform("sepia", 0.5)

	var re *ResolutionError
	if errors.As(rangeErr, &re) {
		t.Errorf("range failure %v reported as resolution failure", rangeErr)
	}
	var ra *RangeError
	if errors.As(resolveErr, &ra) {
		t.Errorf("resolution failure %v reported as range failure", resolveErr)
	}
}
