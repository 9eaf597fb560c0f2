package cv

import (
	"math"
	"testing"
)

func TestClampRound(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{-0.4, 0},
		{-3, 0},
		{0.49999997, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{63.75, 64},
		{127.5, 128},
		{127.49, 127},
		{254.5, 255},
		{254.49, 254},
		{255, 255},
		{300, 255},
		{float32(math.Inf(1)), 255},
		{float32(math.Inf(-1)), 0},
		{float32NaN(), 0},
	}
	for _, tt := range tests {
		if got := clampRound(tt.in); got != tt.want {
			t.Errorf("clampRound(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
