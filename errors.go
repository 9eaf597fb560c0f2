package cv

import "errors"

// Errors returned by buffer construction and the convolution engine.
// All of them are reported before any pixel is written.
var (
	// ErrInvalidKernel is returned when a kernel has an even or non-positive
	// dimension, a weight count that does not match width*height, or a
	// non-finite weight.
	ErrInvalidKernel = errors.New("cv: invalid kernel")

	// ErrInvalidSeparableKernel is returned by ConvolveSeparable when either
	// 1D kernel is empty, has even length or holds a non-finite weight.
	ErrInvalidSeparableKernel = errors.New("cv: invalid separable kernel")

	// ErrInvalidBorderMode is returned for an unknown BorderMode value.
	ErrInvalidBorderMode = errors.New("cv: invalid border mode")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("cv: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is not 1 or 3.
	ErrInvalidChannels = errors.New("cv: channels must be 1 or 3")

	// ErrDataSize is returned when a data slice does not hold exactly
	// width*height*channels bytes.
	ErrDataSize = errors.New("cv: data length does not match dimensions")

	// ErrNilBuffer is returned when a nil *PixelBuffer is passed in.
	ErrNilBuffer = errors.New("cv: nil pixel buffer")
)
