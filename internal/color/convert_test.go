package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Round trips must stay within 8-bit precision.
func TestRoundTripSRGBLinear(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float64(i) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(got-s) > 1.0/255 {
			t.Errorf("round trip of %v = %v", s, got)
		}
	}
}

func TestMixSRGB(t *testing.T) {
	if got := MixSRGB(0.2, 0.8, 0); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("MixSRGB(t=0) = %v, want 0.2", got)
	}
	if got := MixSRGB(0.2, 0.8, 1); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("MixSRGB(t=1) = %v, want 0.8", got)
	}
	// Linear-light midpoint of black and white is brighter than 0.5.
	if got := MixSRGB(0, 1, 0.5); got <= 0.5 {
		t.Errorf("MixSRGB(0, 1, 0.5) = %v, want > 0.5", got)
	}
}
