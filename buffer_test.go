package cv

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPixelBuffer(t *testing.T) {
	for _, ch := range []int{1, 3} {
		buf, err := NewPixelBuffer(4, 3, ch)
		if err != nil {
			t.Fatalf("NewPixelBuffer(4, 3, %d) error = %v", ch, err)
		}
		if got, want := len(buf.Data()), 4*3*ch; got != want {
			t.Errorf("len(Data()) = %d, want %d", got, want)
		}
		if buf.Stride() != 4*ch {
			t.Errorf("Stride() = %d, want %d", buf.Stride(), 4*ch)
		}
		for i, v := range buf.Data() {
			if v != 0 {
				t.Fatalf("Data()[%d] = %d, want zero-filled", i, v)
			}
		}
	}
}

func TestNewPixelBufferInvalid(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
		want    error
	}{
		{"zero width", 0, 3, 1, ErrInvalidDimensions},
		{"negative height", 3, -1, 1, ErrInvalidDimensions},
		{"two channels", 3, 3, 2, ErrInvalidChannels},
		{"four channels", 3, 3, 4, ErrInvalidChannels},
		{"zero channels", 3, 3, 0, ErrInvalidChannels},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPixelBuffer(tt.w, tt.h, tt.c); !errors.Is(err, tt.want) {
				t.Errorf("NewPixelBuffer() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewPixelBufferFromData(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	buf, err := NewPixelBufferFromData(2, 1, 3, data)
	if err != nil {
		t.Fatalf("NewPixelBufferFromData() error = %v", err)
	}
	if diff := cmp.Diff([]uint8{4, 5, 6}, buf.Pixel(1, 0)); diff != "" {
		t.Errorf("Pixel(1, 0) mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewPixelBufferFromData(2, 2, 3, data); !errors.Is(err, ErrDataSize) {
		t.Errorf("short data error = %v, want ErrDataSize", err)
	}
}

func TestPixelBufferGetSet(t *testing.T) {
	buf, _ := NewPixelBuffer(3, 2, 3)
	buf.Set(2, 1, 1, 77)

	if got := buf.Get(2, 1, 1); got != 77 {
		t.Errorf("Get(2, 1, 1) = %d, want 77", got)
	}
	// Interleaved layout: ((y*w)+x)*channels + c.
	if got := buf.Data()[(1*3+2)*3+1]; got != 77 {
		t.Errorf("raw index = %d, want 77", got)
	}

	// Out of range accesses are ignored.
	buf.Set(3, 0, 0, 9)
	buf.Set(0, 0, 3, 9)
	buf.Set(-1, 0, 0, 9)
	if got := buf.Get(3, 0, 0); got != 0 {
		t.Errorf("Get(3, 0, 0) = %d, want 0", got)
	}
	if got := buf.Get(0, 0, 3); got != 0 {
		t.Errorf("Get(0, 0, 3) = %d, want 0", got)
	}
	if buf.Pixel(0, 5) != nil {
		t.Error("Pixel(0, 5) should be nil")
	}
	for i, v := range buf.Data() {
		if v != 0 && i != (1*3+2)*3+1 {
			t.Errorf("Data()[%d] = %d after out of range writes", i, v)
		}
	}
}

func TestPixelBufferFill(t *testing.T) {
	rgb, _ := NewPixelBuffer(2, 2, 3)
	rgb.Fill(1, 2, 3)
	want := []uint8{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}
	if diff := cmp.Diff(want, rgb.Data()); diff != "" {
		t.Errorf("Fill(1, 2, 3) mismatch (-want +got):\n%s", diff)
	}

	rgb.Fill(9)
	for i, v := range rgb.Data() {
		if v != 9 {
			t.Errorf("Fill(9) Data()[%d] = %d", i, v)
		}
	}

	gray, _ := NewPixelBuffer(3, 1, 1)
	gray.Fill(5, 6, 7)
	if diff := cmp.Diff([]uint8{5, 5, 5}, gray.Data()); diff != "" {
		t.Errorf("gray Fill mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelBufferCloneEqual(t *testing.T) {
	buf := randomBuffer(t, 5, 4, 3, 1)
	clone := buf.Clone()
	if !clone.Equal(buf) {
		t.Fatal("Clone() not equal to source")
	}

	clone.Set(0, 0, 0, buf.Get(0, 0, 0)+1)
	if clone.Equal(buf) {
		t.Error("Equal() ignores data")
	}
	if buf.Equal(nil) {
		t.Error("Equal(nil) = true")
	}

	gray := randomBuffer(t, 15, 4, 1, 1)
	if buf.SameShape(gray) {
		t.Error("SameShape() ignores channels")
	}
}

func TestPixelBufferToImage(t *testing.T) {
	gray := bufferFrom(t, 2, 2, 1, 10, 20, 30, 40)
	img, ok := gray.ToImage().(*image.Gray)
	if !ok {
		t.Fatalf("ToImage() = %T, want *image.Gray", gray.ToImage())
	}
	if got := img.GrayAt(1, 1).Y; got != 40 {
		t.Errorf("GrayAt(1, 1) = %d, want 40", got)
	}

	rgb := bufferFrom(t, 2, 1, 3, 1, 2, 3, 4, 5, 6)
	rgba, ok := rgb.ToImage().(*image.RGBA)
	if !ok {
		t.Fatalf("ToImage() = %T, want *image.RGBA", rgb.ToImage())
	}
	if got, want := rgba.RGBAAt(1, 0), (color.RGBA{4, 5, 6, 255}); got != want {
		t.Errorf("RGBAAt(1, 0) = %v, want %v", got, want)
	}
	if rgb.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Errorf("Bounds() = %v", rgb.Bounds())
	}
}
