// Package cv provides 2D convolution over 8-bit pixel buffers.
//
// # Overview
//
// cv is a Pure Go image filtering core. It convolves gray (1 channel) or
// RGB (3 channel) buffers with arbitrary odd-sized kernels, offers a
// separable two-pass fast path, and can split the work across goroutines
// without changing a single output byte.
//
// # Quick Start
//
//	import "github.com/gogpu/cv"
//
//	buf, _ := cv.NewPixelBuffer(640, 480, 3)
//
//	// Full 2D convolution
//	k, _ := cv.Gaussian(5, 1.2)
//	out, err := cv.Convolve(buf, k, cv.BorderReflect)
//
//	// Separable fast path with explicit 1D kernels
//	g := cv.CachedGaussianKernel1D(1.2)
//	out, err = cv.ConvolveSeparable(buf, g, g, cv.BorderReflect)
//
//	// Parallel execution, byte-identical to the sequential result
//	out, err = cv.Convolve(buf, k, cv.BorderReflect, cv.WithWorkers(8))
//
// # Border Modes
//
// Taps that fall outside the image are resolved per axis:
//   - BorderZero: the tap contributes nothing
//   - BorderReplicate: nearest edge pixel
//   - BorderReflect: mirror including the edge pixel, any distance
//   - BorderWrap: periodic tiling, any distance
//
// # Rounding
//
// Sums accumulate in float32 in kernel row-major tap order. The result is
// clamped to [0, 255] and rounded half away from zero. The separable path
// keeps its intermediate in float32 and rounds once.
//
// # Architecture
//
// The library is organized into:
//   - Public API: PixelBuffer, Kernel, BorderMode, Engine
//   - Internal: parallel (row partitioning, fork/join)
//   - Adapters: imageio (file formats), cmd/cvconv (command line)
//
// File decoding, color conversion and geometry live outside this package
// and only exchange PixelBuffer values with it.
package cv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
