package imageio

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/cv"
)

// ToPixelBuffer converts img to a buffer with the given channel count.
// channels <= 0 picks 1 for gray sources and 3 otherwise. Alpha is
// dropped; RGB values are taken non-premultiplied.
func ToPixelBuffer(img image.Image, channels int) (*cv.PixelBuffer, error) {
	if channels <= 0 {
		channels = 3
		if isGray(img) {
			channels = 1
		}
	}

	bounds := img.Bounds()
	buf, err := cv.NewPixelBuffer(bounds.Dx(), bounds.Dy(), channels)
	if err != nil {
		return nil, err
	}
	w, h := buf.Width(), buf.Height()
	data := buf.Data()

	if channels == 1 {
		gray, ok := img.(*image.Gray)
		if !ok {
			gray = image.NewGray(image.Rect(0, 0, w, h))
			draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
		}
		for y := range h {
			off := gray.PixOffset(gray.Rect.Min.X, gray.Rect.Min.Y+y)
			copy(data[y*w:(y+1)*w], gray.Pix[off:off+w])
		}
		return buf, nil
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	for y := range h {
		src := nrgba.Pix[nrgba.PixOffset(nrgba.Rect.Min.X, nrgba.Rect.Min.Y+y):]
		dst := data[y*w*3 : (y+1)*w*3]
		for x := range w {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf, nil
}

func isGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	return false
}
