package cv

import (
	"errors"
	"testing"
)

func TestBorderSample(t *testing.T) {
	type tc struct {
		i, n   int
		want   int
		wantOK bool
	}
	tests := map[BorderMode][]tc{
		BorderZero: {
			{0, 4, 0, true}, {3, 4, 3, true},
			{-1, 4, 0, false}, {4, 4, 0, false}, {-100, 4, 0, false},
		},
		BorderReplicate: {
			{2, 4, 2, true}, {-1, 4, 0, true}, {-100, 4, 0, true},
			{4, 4, 3, true}, {1000, 4, 3, true}, {5, 1, 0, true},
		},
		BorderReflect: {
			{-1, 4, 0, true}, {-2, 4, 1, true}, {-4, 4, 3, true}, {-5, 4, 3, true},
			{4, 4, 3, true}, {5, 4, 2, true}, {7, 4, 0, true}, {8, 4, 0, true},
			{11, 4, 3, true}, {12, 4, 3, true}, {-100, 4, 3, true},
			{-7, 1, 0, true}, {9, 1, 0, true}, {-1, 2, 0, true}, {-3, 2, 1, true},
		},
		BorderWrap: {
			{-1, 4, 3, true}, {-5, 4, 3, true}, {4, 4, 0, true}, {9, 4, 1, true},
			{-100, 4, 0, true}, {-101, 4, 3, true}, {17, 1, 0, true}, {-17, 3, 1, true},
		},
	}

	for mode, cases := range tests {
		for _, c := range cases {
			got, ok := mode.Sample(c.i, c.n)
			if ok != c.wantOK || (ok && got != c.want) {
				t.Errorf("%v.Sample(%d, %d) = (%d, %v), want (%d, %v)",
					mode, c.i, c.n, got, ok, c.want, c.wantOK)
			}
		}
	}
}

func TestBorderSampleAlwaysInRange(t *testing.T) {
	for _, mode := range allModes {
		for n := 1; n <= 7; n++ {
			for i := -50; i <= 50; i++ {
				got, ok := mode.Sample(i, n)
				if !ok {
					if mode != BorderZero {
						t.Fatalf("%v.Sample(%d, %d) reported zero contribution", mode, i, n)
					}
					continue
				}
				if got < 0 || got >= n {
					t.Fatalf("%v.Sample(%d, %d) = %d, out of [0, %d)", mode, i, n, got, n)
				}
			}
		}
	}
}

func TestBorderReflectIsMirror(t *testing.T) {
	// Within one image width of either edge, reflection mirrors the edge
	// pixel itself: -1 -> 0, -2 -> 1, n -> n-1, n+1 -> n-2.
	const n = 6
	for d := 1; d <= n; d++ {
		if got, _ := BorderReflect.Sample(-d, n); got != d-1 {
			t.Errorf("Sample(%d, %d) = %d, want %d", -d, n, got, d-1)
		}
		if got, _ := BorderReflect.Sample(n-1+d, n); got != n-d {
			t.Errorf("Sample(%d, %d) = %d, want %d", n-1+d, n, got, n-d)
		}
	}
}

func TestBorderSampleInvalidMode(t *testing.T) {
	if _, ok := BorderMode(42).Sample(-1, 3); ok {
		t.Error("invalid mode sampled an out of range coordinate")
	}
}

func TestBorderModeString(t *testing.T) {
	tests := []struct {
		mode BorderMode
		want string
	}{
		{BorderZero, "zero"},
		{BorderReplicate, "replicate"},
		{BorderReflect, "reflect"},
		{BorderWrap, "wrap"},
		{BorderMode(7), "BorderMode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseBorderMode(t *testing.T) {
	tests := []struct {
		in   string
		want BorderMode
	}{
		{"zero", BorderZero},
		{"Constant", BorderZero},
		{"replicate", BorderReplicate},
		{"CLAMP", BorderReplicate},
		{"edge", BorderReplicate},
		{" reflect ", BorderReflect},
		{"mirror", BorderReflect},
		{"wrap", BorderWrap},
		{"tile", BorderWrap},
	}
	for _, tt := range tests {
		got, err := ParseBorderMode(tt.in)
		if err != nil {
			t.Errorf("ParseBorderMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBorderMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseBorderMode("reflect101"); !errors.Is(err, ErrInvalidBorderMode) {
		t.Errorf("ParseBorderMode(reflect101) error = %v, want ErrInvalidBorderMode", err)
	}
}

func TestBorderSampleEmptyAxis(t *testing.T) {
	for _, mode := range append(allModes, BorderMode(42)) {
		for _, n := range []int{0, -1, -8} {
			for _, i := range []int{-3, -1, 0, 1, 5} {
				if idx, ok := mode.Sample(i, n); ok || idx != 0 {
					t.Errorf("%v.Sample(%d, %d) = (%d, %v), want (0, false)", mode, i, n, idx, ok)
				}
			}
		}
	}
}
