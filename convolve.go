package cv

import "github.com/gogpu/cv/internal/parallel"

// convolveRows computes output rows [r.Start, r.End) of the full 2D pass.
//
// For every pixel, taps accumulate in (ky, kx) order regardless of how rows
// are partitioned, which keeps parallel output identical to sequential.
// Each product is converted to float32 before it is added so the compiler
// cannot fuse it into an FMA.
func convolveRows(src, dst *PixelBuffer, k *Kernel, mode BorderMode, r parallel.RowRange) {
	w, h, ch := src.width, src.height, src.channels
	kw, kh := k.width, k.height
	rx, ry := kw/2, kh/2
	stride := w * ch

	var acc [3]float32
	sum := acc[:ch]

	for y := r.Start; y < r.End; y++ {
		out := dst.data[y*stride : (y+1)*stride]
		for x := 0; x < w; x++ {
			clear(sum)
			interiorX := x-rx >= 0 && x+rx < w

			for ky := 0; ky < kh; ky++ {
				sy, ok := mode.Sample(y+ky-ry, h)
				if !ok {
					continue
				}
				row := src.data[sy*stride : (sy+1)*stride]
				weights := k.weights[ky*kw : (ky+1)*kw]

				for kx, wt := range weights {
					sx := x + kx - rx
					if !interiorX {
						if sx, ok = mode.Sample(sx, w); !ok {
							continue
						}
					}
					px := row[sx*ch : sx*ch+ch]
					for c, v := range px {
						sum[c] += float32(wt * float32(v))
					}
				}
			}

			o := out[x*ch : x*ch+ch]
			for c, v := range sum {
				o[c] = clampRound(v)
			}
		}
	}
}
