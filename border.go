package cv

import (
	"fmt"
	"strings"
)

// BorderMode selects how a kernel tap outside the image obtains a sample.
type BorderMode int

const (
	// BorderZero treats pixels outside the image as 0. Out of range taps
	// are dropped from the weighted sum.
	BorderZero BorderMode = iota

	// BorderReplicate repeats the nearest edge pixel (aaa|abcd|ddd).
	BorderReplicate

	// BorderReflect mirrors across the edge including the edge pixel
	// (dcba|abcd|dcba). Valid for any distance from the image.
	BorderReflect

	// BorderWrap tiles the image periodically (abcd|abcd|abcd).
	BorderWrap
)

var borderNames = [...]string{
	BorderZero:      "zero",
	BorderReplicate: "replicate",
	BorderReflect:   "reflect",
	BorderWrap:      "wrap",
}

// String returns the lower-case mode name.
func (m BorderMode) String() string {
	if m.IsValid() {
		return borderNames[m]
	}
	return fmt.Sprintf("BorderMode(%d)", int(m))
}

// IsValid reports whether m is one of the defined modes.
func (m BorderMode) IsValid() bool {
	return m >= BorderZero && m <= BorderWrap
}

// ParseBorderMode parses a mode name. Matching is case-insensitive and
// accepts common aliases (constant, clamp, edge, mirror, tile).
func ParseBorderMode(s string) (BorderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "constant":
		return BorderZero, nil
	case "replicate", "clamp", "edge":
		return BorderReplicate, nil
	case "reflect", "mirror":
		return BorderReflect, nil
	case "wrap", "tile":
		return BorderWrap, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBorderMode, s)
}

// Sample maps the logical coordinate i on an axis of extent n to an
// in-range coordinate. ok is false when the tap contributes zero, which
// happens for BorderZero outside [0, n), for an invalid mode, and for an
// empty axis (n <= 0).
//
// Sample is total: any i and n are accepted, including coordinates
// several periods away from the image.
func (m BorderMode) Sample(i, n int) (idx int, ok bool) {
	if n <= 0 {
		return 0, false
	}
	if i >= 0 && i < n {
		return i, true
	}
	switch m {
	case BorderZero:
		return 0, false
	case BorderReplicate:
		return clampIndex(i, n), true
	case BorderReflect:
		return reflectIndex(i, n), true
	case BorderWrap:
		return wrapIndex(i, n), true
	}
	return 0, false
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// reflectIndex folds i onto a triangular wave of period 2n.
func reflectIndex(i, n int) int {
	period := 2 * n
	p := i % period
	if p < 0 {
		p += period
	}
	if p < n {
		return p
	}
	return period - 1 - p
}

func wrapIndex(i, n int) int {
	p := i % n
	if p < 0 {
		p += n
	}
	return p
}
