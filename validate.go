package blush

import "github.com/gogpu/blush/internal/channel"

// checkInts narrows integer channel arguments, collecting every channel
// that does not fit in [0,255].
func checkInts(r, g, b, a int) (rgba [4]uint8, err error) {
	var bad []Channel
	for i, v := range [4]int{r, g, b, a} {
		c, ok := channel.Narrow(v)
		if !ok {
			bad = append(bad, Channel(i))
			continue
		}
		rgba[i] = c
	}
	if bad != nil {
		return rgba, &RangeError{Channels: bad}
	}
	return rgba, nil
}

// checkFloats validates unit float channel arguments, collecting every
// channel that does not lie in [0,1].
func checkFloats(r, g, b, a float64) error {
	var bad []Channel
	for i, v := range [4]float64{r, g, b, a} {
		if !channel.InUnit(v) {
			bad = append(bad, Channel(i))
		}
	}
	if bad != nil {
		return &RangeError{Channels: bad}
	}
	return nil
}
