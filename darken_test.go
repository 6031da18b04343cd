package blush

import (
	"math"
	"testing"
)

func TestDarken(t *testing.T) {
	tests := []struct {
		name  string
		in    Color
		value float64
		want  Color
	}{
		{"white by half", White, 0.5, MustNewRGBA(128, 128, 128, 255)},
		{"identity", Pink, 0, Pink},
		{"to black", Orange, 1, Black},
		{"keeps alpha at full darken", MustNewRGBA(10, 20, 30, 77), 1, MustNewRGBA(0, 0, 0, 77)},
		{"keeps alpha", MustNewRGBA(200, 100, 50, 128), 0.25, MustNewRGBA(150, 75, 38, 128)},
		{"beyond one clamps to zero", White, 2, Black},
		{"negative lightens and clamps", MustNew(200, 100, 0), -1, MustNew(255, 200, 0)},
		{"nan goes black", Gray, math.NaN(), Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Darken{}.Transform(tt.in, tt.value)
			if got != tt.want {
				t.Errorf("Darken{}.Transform(%v, %v) = %v, want %v", tt.in, tt.value, got, tt.want)
			}
		})
	}
}

func TestDarken_DoesNotMutate(t *testing.T) {
	in := MustNew(90, 180, 45)
	_ = Darken{}.Transform(in, 0.5)
	if in != MustNew(90, 180, 45) {
		t.Errorf("input changed to %v", in)
	}
}

func TestDarken_Monotonic(t *testing.T) {
	prev := White
	for i := 1; i <= 20; i++ {
		c := Darken{}.Transform(White, float64(i)/20)
		if c.Red() > prev.Red() {
			t.Fatalf("darken %v brighter than previous step: %v > %v", float64(i)/20, c, prev)
		}
		prev = c
	}
	if prev != Black {
		t.Errorf("last step = %v, want black", prev)
	}
}

func BenchmarkDarken(b *testing.B) {
	c := Pink
	b.ReportAllocs()
	for b.Loop() {
		c = Darken{}.Transform(Pink, 0.3)
	}
	_ = c
}
