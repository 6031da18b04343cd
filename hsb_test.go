package blush

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestRGBToHSB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v float64
	}{
		{"red", 255, 0, 0, 0, 1, 1},
		{"green", 0, 255, 0, 1.0 / 3, 1, 1},
		{"blue", 0, 0, 255, 2.0 / 3, 1, 1},
		{"yellow", 255, 255, 0, 1.0 / 6, 1, 1},
		{"cyan", 0, 255, 255, 0.5, 1, 1},
		{"magenta", 255, 0, 255, 5.0 / 6, 1, 1},
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 1},
		{"dark red", 128, 0, 0, 0, 1, 128.0 / 255},
		{"pink", 255, 175, 175, 0, 80.0 / 255, 1},
		{"orange", 255, 200, 0, 200.0 / 255 / 6, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSB(tt.r, tt.g, tt.b)
			if !near(h, tt.h) || !near(s, tt.s) || !near(v, tt.v) {
				t.Errorf("RGBToHSB(%d, %d, %d) = (%v, %v, %v), want (%v, %v, %v)",
					tt.r, tt.g, tt.b, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestRGBToHSB_RedExact(t *testing.T) {
	h, s, v := RGBToHSB(255, 0, 0)
	if h != 0 || s != 1 || v != 1 {
		t.Errorf("RGBToHSB(255, 0, 0) = (%v, %v, %v), want (0, 1, 1)", h, s, v)
	}
}

func TestRGBToHSB_Gray(t *testing.T) {
	for i := 0; i <= 255; i++ {
		g := uint8(i)
		h, s, v := RGBToHSB(g, g, g)
		if h != 0 || s != 0 {
			t.Errorf("RGBToHSB(%d, %d, %d) = (%v, %v, _), want hue and saturation 0", g, g, g, h, s)
		}
		if v != float64(i)/255 {
			t.Errorf("RGBToHSB(%d, %d, %d) brightness = %v, want %v", g, g, g, v, float64(i)/255)
		}
	}
}

func TestRGBToHSB_Range(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				h, s, v := RGBToHSB(uint8(r), uint8(g), uint8(b))
				if h < 0 || h >= 1 || s < 0 || s > 1 || v < 0 || v > 1 {
					t.Fatalf("RGBToHSB(%d, %d, %d) = (%v, %v, %v) out of [0, 1]", r, g, b, h, s, v)
				}
			}
		}
	}
}

// TestRGBToHSB_MatchesColorful checks the conversion against go-colorful's
// HSV implementation, which scales hue to degrees.
func TestRGBToHSB_MatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				h, s, v := RGBToHSB(uint8(r), uint8(g), uint8(b))
				ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				wantH, wantS, wantV := ref.Hsv()
				if !near(h, wantH/360) || !near(s, wantS) || !near(v, wantV) {
					t.Errorf("RGBToHSB(%d, %d, %d) = (%v, %v, %v), colorful says (%v, %v, %v)",
						r, g, b, h, s, v, wantH/360, wantS, wantV)
				}
			}
		}
	}
}

func TestHSLConverter(t *testing.T) {
	m := HSLConverter{}.Convert(Red)
	if m.Hue() != 0 || m.Saturation() != 1 || m.Brightness() != 1 {
		t.Errorf("HSLConverter{}.Convert(Red) = (%v, %v, %v), want (0, 1, 1)",
			m.Hue(), m.Saturation(), m.Brightness())
	}
}

func TestHSLConverter_ForwardsChannels(t *testing.T) {
	c := MustNewRGBA(12, 34, 56, 78)
	m := HSLConverter{}.Convert(c)
	if m.Red() != 12 || m.Green() != 34 || m.Blue() != 56 || m.Alpha() != 78 {
		t.Errorf("Convert(%v) channels = (%d, %d, %d, %d)", c, m.Red(), m.Green(), m.Blue(), m.Alpha())
	}
}

func TestHSLConverter_StableReads(t *testing.T) {
	m := HSLConverter{}.Convert(Orange)
	h, s, v := m.Hue(), m.Saturation(), m.Brightness()
	for range 3 {
		if m.Hue() != h || m.Saturation() != s || m.Brightness() != v {
			t.Fatal("repeated reads returned different values")
		}
	}
	if ToHSB(Orange) != m.(HSB) {
		t.Errorf("ToHSB(Orange) = %+v, want %+v", ToHSB(Orange), m)
	}
}

func BenchmarkRGBToHSB(b *testing.B) {
	var h, s, v float64
	b.ReportAllocs()
	for b.Loop() {
		h, s, v = RGBToHSB(255, 200, 17)
	}
	_, _, _ = h, s, v
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
