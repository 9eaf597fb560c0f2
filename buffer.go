package cv

import (
	"fmt"
	"image"
)

// PixelBuffer is a row-major pixel store with 1 (gray) or 3 (RGB)
// interleaved 8-bit channels.
//
// For a 3-channel buffer the data layout is [r,g,b, r,g,b, ...].
// len(Data()) is always Width()*Height()*Channels().
//
// Thread safety: concurrent reads are safe. Writes require external
// synchronization.
type PixelBuffer struct {
	width    int
	height   int
	channels int
	data     []uint8
}

// NewPixelBuffer allocates a zero-filled buffer.
func NewPixelBuffer(width, height, channels int) (*PixelBuffer, error) {
	if err := checkShape(width, height, channels); err != nil {
		return nil, err
	}
	return &PixelBuffer{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]uint8, width*height*channels),
	}, nil
}

// NewPixelBufferFromData wraps data without copying. The buffer takes
// ownership of the slice.
func NewPixelBufferFromData(width, height, channels int, data []uint8) (*PixelBuffer, error) {
	if err := checkShape(width, height, channels); err != nil {
		return nil, err
	}
	if want := width * height * channels; len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(data), want)
	}
	return &PixelBuffer{
		width:    width,
		height:   height,
		channels: channels,
		data:     data,
	}, nil
}

func checkShape(width, height, channels int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if channels != 1 && channels != 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	return nil
}

// newBufferLike allocates a zero-filled buffer with the shape of b.
func newBufferLike(b *PixelBuffer) *PixelBuffer {
	return &PixelBuffer{
		width:    b.width,
		height:   b.height,
		channels: b.channels,
		data:     make([]uint8, len(b.data)),
	}
}

// Width returns the width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Channels returns the number of interleaved channels (1 or 3).
func (b *PixelBuffer) Channels() int {
	return b.channels
}

// Stride returns the number of bytes per row.
func (b *PixelBuffer) Stride() int {
	return b.width * b.channels
}

// Data returns the raw pixel data.
func (b *PixelBuffer) Data() []uint8 {
	return b.data
}

// Get returns channel c of the pixel at (x, y).
// Out of range coordinates return 0.
func (b *PixelBuffer) Get(x, y, c int) uint8 {
	if !b.inBounds(x, y, c) {
		return 0
	}
	return b.data[(y*b.width+x)*b.channels+c]
}

// Set writes channel c of the pixel at (x, y).
// Out of range coordinates are ignored.
func (b *PixelBuffer) Set(x, y, c int, v uint8) {
	if !b.inBounds(x, y, c) {
		return
	}
	b.data[(y*b.width+x)*b.channels+c] = v
}

func (b *PixelBuffer) inBounds(x, y, c int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height && c >= 0 && c < b.channels
}

// Pixel returns a copy of all channels of the pixel at (x, y),
// or nil if (x, y) is out of range.
func (b *PixelBuffer) Pixel(x, y int) []uint8 {
	if !b.inBounds(x, y, 0) {
		return nil
	}
	i := (y*b.width + x) * b.channels
	px := make([]uint8, b.channels)
	copy(px, b.data[i:i+b.channels])
	return px
}

// SetPixel writes up to Channels() values to the pixel at (x, y).
func (b *PixelBuffer) SetPixel(x, y int, vals ...uint8) {
	if !b.inBounds(x, y, 0) {
		return
	}
	i := (y*b.width + x) * b.channels
	copy(b.data[i:i+b.channels], vals)
}

// Fill sets every pixel to vals. A single value fills all channels.
func (b *PixelBuffer) Fill(vals ...uint8) {
	if len(vals) == 0 {
		return
	}
	px := make([]uint8, b.channels)
	for c := range px {
		if len(vals) == 1 {
			px[c] = vals[0]
		} else if c < len(vals) {
			px[c] = vals[c]
		}
	}
	for i := 0; i < len(b.data); i += b.channels {
		copy(b.data[i:i+b.channels], px)
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	clone := newBufferLike(b)
	copy(clone.data, b.data)
	return clone
}

// SameShape reports whether both buffers have equal width, height and
// channel count.
func (b *PixelBuffer) SameShape(other *PixelBuffer) bool {
	return other != nil &&
		b.width == other.width &&
		b.height == other.height &&
		b.channels == other.channels
}

// Equal reports whether both buffers have the same shape and bytes.
func (b *PixelBuffer) Equal(other *PixelBuffer) bool {
	if !b.SameShape(other) {
		return false
	}
	for i, v := range b.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ToImage copies the buffer into a standard library image:
// *image.Gray for 1 channel, opaque *image.RGBA for 3 channels.
func (b *PixelBuffer) ToImage() image.Image {
	if b.channels == 1 {
		img := image.NewGray(b.Bounds())
		for y := 0; y < b.height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+b.width], b.data[y*b.width:(y+1)*b.width])
		}
		return img
	}

	img := image.NewRGBA(b.Bounds())
	for y := 0; y < b.height; y++ {
		src := b.data[y*b.Stride() : (y+1)*b.Stride()]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		for x := 0; x < b.width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}
