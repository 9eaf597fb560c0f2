package cv

import (
	"sync"

	"github.com/gogpu/cv/internal/parallel"
)

// convolveHorizontal writes the unclamped row convolution of rows
// [r.Start, r.End) of src into tmp. Horizontal border handling is fully
// resolved here.
func convolveHorizontal(src *PixelBuffer, tmp []float32, kernel []float32, mode BorderMode, r parallel.RowRange) {
	w, ch := src.width, src.channels
	half := len(kernel) / 2
	stride := w * ch

	var acc [3]float32
	sum := acc[:ch]

	for y := r.Start; y < r.End; y++ {
		row := src.data[y*stride : (y+1)*stride]
		out := tmp[y*stride : (y+1)*stride]

		for x := 0; x < w; x++ {
			clear(sum)
			interior := x-half >= 0 && x+half < w

			for k, wt := range kernel {
				sx := x + k - half
				if !interior {
					var ok bool
					if sx, ok = mode.Sample(sx, w); !ok {
						continue
					}
				}
				px := row[sx*ch : sx*ch+ch]
				for c, v := range px {
					sum[c] += float32(wt * float32(v))
				}
			}

			copy(out[x*ch:x*ch+ch], sum)
		}
	}
}

// convolveVertical convolves columns of tmp with kernel for output rows
// [r.Start, r.End) and rounds into dst. It reads only tmp.
func convolveVertical(tmp []float32, dst *PixelBuffer, kernel []float32, mode BorderMode, r parallel.RowRange) {
	w, h, ch := dst.width, dst.height, dst.channels
	half := len(kernel) / 2
	stride := w * ch

	// Source row offsets for each tap, or -1 for a zero contribution.
	offsets := make([]int, len(kernel))

	for y := r.Start; y < r.End; y++ {
		for k := range kernel {
			if sy, ok := mode.Sample(y+k-half, h); ok {
				offsets[k] = sy * stride
			} else {
				offsets[k] = -1
			}
		}

		out := dst.data[y*stride : (y+1)*stride]
		for i := range out {
			var sum float32
			for k, wt := range kernel {
				off := offsets[k]
				if off < 0 {
					continue
				}
				sum += float32(wt * tmp[off+i])
			}
			out[i] = clampRound(sum)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// maxPooledFloats bounds pooled intermediates to 64MB.
const maxPooledFloats = 16 * 1024 * 1024

// tempBufferPool recycles separable intermediates between calls.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer returns a slice of exactly n floats. Contents are
// unspecified; the horizontal pass overwrites every element.
func getTempBuffer(n int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < n {
		tempBufferPool.Put(wrapper)
		return make([]float32, n)
	}
	return wrapper.data[:n]
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= maxPooledFloats {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
