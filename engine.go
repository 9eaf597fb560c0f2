package cv

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/cv/internal/parallel"
)

// Engine runs convolutions with a fixed execution strategy.
//
// An Engine holds no goroutines or buffers between calls; parallel
// execution forks and joins inside each call. It is immutable and safe for
// concurrent use.
type Engine struct {
	opts options
}

// NewEngine creates an engine. Without options it runs sequentially.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// Workers returns the number of row bands each call is split into.
func (e *Engine) Workers() int {
	return e.opts.workers
}

func (e *Engine) logger() *slog.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	return Logger()
}

// Convolve applies k to every channel of src and returns a new buffer of
// the same shape. src is never modified.
func (e *Engine) Convolve(src *PixelBuffer, k *Kernel, mode BorderMode) (*PixelBuffer, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if !k.valid() {
		return nil, fmt.Errorf("%w: kernel was not built with NewKernel", ErrInvalidKernel)
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBorderMode, mode)
	}

	start := time.Now()
	dst := newBufferLike(src)
	ranges := parallel.SplitRows(src.height, e.opts.workers)
	err := parallel.ForkJoin(ranges, func(r parallel.RowRange) error {
		convolveRows(src, dst, k, mode, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger().Debug("cv: convolve",
		"size", fmt.Sprintf("%dx%dx%d", src.width, src.height, src.channels),
		"kernel", fmt.Sprintf("%dx%d", k.width, k.height),
		"mode", mode.String(),
		"bands", parallel.Active(ranges),
		"elapsed", time.Since(start))
	return dst, nil
}

// ConvolveSeparable convolves rows of src with kernelX, then columns of the
// float32 intermediate with kernelY, and returns a new buffer of the same
// shape. Rounding happens once, after the vertical pass.
//
// The kernels are supplied directly; no 2D kernel is ever decomposed.
func (e *Engine) ConvolveSeparable(src *PixelBuffer, kernelX, kernelY []float32, mode BorderMode) (*PixelBuffer, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if err := checkKernel1D(kernelX); err != nil {
		return nil, fmt.Errorf("%w: kernelX %v", ErrInvalidSeparableKernel, err)
	}
	if err := checkKernel1D(kernelY); err != nil {
		return nil, fmt.Errorf("%w: kernelY %v", ErrInvalidSeparableKernel, err)
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBorderMode, mode)
	}

	start := time.Now()
	dst := newBufferLike(src)
	tmp := getTempBuffer(len(src.data))
	defer putTempBuffer(tmp)

	ranges := parallel.SplitRows(src.height, e.opts.workers)
	err := parallel.ForkJoin(ranges, func(r parallel.RowRange) error {
		convolveHorizontal(src, tmp, kernelX, mode, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// The vertical pass reads rows owned by other bands, so it starts only
	// after every horizontal band has joined.
	err = parallel.ForkJoin(ranges, func(r parallel.RowRange) error {
		convolveVertical(tmp, dst, kernelY, mode, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger().Debug("cv: convolve separable",
		"size", fmt.Sprintf("%dx%dx%d", src.width, src.height, src.channels),
		"kernel", fmt.Sprintf("%dx%d", len(kernelX), len(kernelY)),
		"mode", mode.String(),
		"bands", parallel.Active(ranges),
		"elapsed", time.Since(start))
	return dst, nil
}

// checkSource rejects nil or hand-assembled buffers before any work.
func checkSource(src *PixelBuffer) error {
	if src == nil {
		return ErrNilBuffer
	}
	if err := checkShape(src.width, src.height, src.channels); err != nil {
		return err
	}
	if len(src.data) != src.width*src.height*src.channels {
		return fmt.Errorf("%w: got %d bytes", ErrDataSize, len(src.data))
	}
	return nil
}

// Convolve applies k to src on a per-call engine configured by opts.
// Without options it runs sequentially.
func Convolve(src *PixelBuffer, k *Kernel, mode BorderMode, opts ...Option) (*PixelBuffer, error) {
	return NewEngine(opts...).Convolve(src, k, mode)
}

// ConvolveSeparable applies kernelX horizontally and kernelY vertically on a
// per-call engine configured by opts.
func ConvolveSeparable(src *PixelBuffer, kernelX, kernelY []float32, mode BorderMode, opts ...Option) (*PixelBuffer, error) {
	return NewEngine(opts...).ConvolveSeparable(src, kernelX, kernelY, mode)
}
