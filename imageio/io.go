// Package imageio converts between encoded image files and cv.PixelBuffer.
//
// Decoding supports PNG, JPEG and GIF from the standard library and BMP,
// TIFF and WebP from golang.org/x/image. Encoding supports PNG, JPEG, BMP
// and TIFF. The convolution core never imports this package.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Registered with image.Decode.
	_ "image/gif"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/cv"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format names as reported by image.Decode and accepted by Encode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

// DefaultJPEGQuality is used when Options is nil or Quality is zero.
const DefaultJPEGQuality = 90

// Options controls encoding.
type Options struct {
	// Quality is the JPEG quality in [1, 100]. Zero selects
	// DefaultJPEGQuality.
	Quality int
}

// FormatFromPath maps a file extension to a format name.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode decodes an image of any registered format. Gray sources produce
// 1-channel buffers, everything else 3-channel. The format name is
// returned alongside.
func Decode(r io.Reader) (*cv.PixelBuffer, string, error) {
	return DecodeAs(r, 0)
}

// DecodeAs decodes an image into a buffer with the given channel count.
// channels <= 0 picks 1 for gray sources and 3 otherwise.
func DecodeAs(r io.Reader, channels int) (*cv.PixelBuffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	buf, err := ToPixelBuffer(img, channels)
	if err != nil {
		return nil, format, err
	}
	return buf, format, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte, channels int) (*cv.PixelBuffer, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return DecodeAs(bytes.NewReader(data), channels)
}

// Load reads and decodes the image at path.
func Load(path string, channels int) (*cv.PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, _, err := DecodeAs(f, channels)
	return buf, err
}

// Encode writes buf to w in the named format.
func Encode(w io.Writer, buf *cv.PixelBuffer, format string, opts *Options) error {
	if buf == nil {
		return cv.ErrNilBuffer
	}
	img := buf.ToImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// Save encodes buf to path, choosing the format from the extension.
func Save(path string, buf *cv.PixelBuffer, opts *Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, buf, format, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (o *Options) quality() int {
	if o == nil || o.Quality == 0 {
		return DefaultJPEGQuality
	}
	return min(max(o.Quality, 1), 100)
}
