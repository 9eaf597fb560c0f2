package cv

import (
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across cv tests.

var allModes = []BorderMode{BorderZero, BorderReplicate, BorderReflect, BorderWrap}

// randomBuffer returns a buffer filled with deterministic noise.
func randomBuffer(t testing.TB, w, h, ch int, seed uint64) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(w, h, ch)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d, %d) error = %v", w, h, ch, err)
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range buf.data {
		buf.data[i] = uint8(r.IntN(256))
	}
	return buf
}

// bufferFrom wraps literal data in a buffer.
func bufferFrom(t testing.TB, w, h, ch int, data ...uint8) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBufferFromData(w, h, ch, data)
	if err != nil {
		t.Fatalf("NewPixelBufferFromData(%d, %d, %d) error = %v", w, h, ch, err)
	}
	return buf
}

// mustNewKernel builds a kernel or fails the test.
func mustNewKernel(t testing.TB, w, h int, weights ...float32) *Kernel {
	t.Helper()
	k, err := NewKernel(w, h, weights)
	if err != nil {
		t.Fatalf("NewKernel(%d, %d) error = %v", w, h, err)
	}
	return k
}

// maxAbsDiff returns the largest per-byte difference of two same-shaped buffers.
func maxAbsDiff(a, b *PixelBuffer) int {
	worst := 0
	for i := range a.data {
		d := int(a.data[i]) - int(b.data[i])
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return worst
}
