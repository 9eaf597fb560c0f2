package cv

import (
	"errors"
	"fmt"
	"math"
)

var (
	errEmptyKernel1D   = errors.New("length is zero")
	errEvenKernel1D    = errors.New("length is even")
	errNonFiniteWeight = errors.New("weight is not finite")
)

// checkKernel1D validates a 1D kernel for the separable path.
func checkKernel1D(k []float32) error {
	if len(k) == 0 {
		return errEmptyKernel1D
	}
	if len(k)%2 == 0 {
		return fmt.Errorf("%w (%d)", errEvenKernel1D, len(k))
	}
	if i := firstNonFinite(k); i >= 0 {
		return fmt.Errorf("%w at %d", errNonFiniteWeight, i)
	}
	return nil
}

// GaussianKernel1D samples exp(-x²/(2σ²)) at size taps centered on zero
// and normalizes the result to sum to 1.0.
//
// The outer product of two such kernels equals Gaussian(size, sigma).
func GaussianKernel1D(size int, sigma float32) ([]float32, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: gaussian size %d must be positive and odd", ErrInvalidSeparableKernel, size)
	}
	if !(sigma > 0) || math.IsInf(float64(sigma), 0) {
		return nil, fmt.Errorf("%w: gaussian sigma %v must be positive and finite", ErrInvalidSeparableKernel, sigma)
	}

	half := size / 2
	twoSigmaSq := 2 * float64(sigma) * float64(sigma)
	samples := make([]float64, size)
	var sum float64
	for i := range samples {
		x := float64(i - half)
		samples[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += samples[i]
	}

	kernel := make([]float32, size)
	for i, v := range samples {
		kernel[i] = float32(v / sum)
	}
	return kernel, nil
}

// BoxKernel1D returns a uniform kernel of the given odd size with every
// value equal to 1/size.
//
// Three passes of box blur approximate a Gaussian well.
func BoxKernel1D(size int) ([]float32, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: box size %d must be positive and odd", ErrInvalidSeparableKernel, size)
	}
	kernel := make([]float32, size)
	v := float32(1.0 / float64(size))
	for i := range kernel {
		kernel[i] = v
	}
	return kernel, nil
}

// maxGaussianHalf caps the radius GaussianSize derives from sigma.
const maxGaussianHalf = 1 << 20

// GaussianSize returns the kernel size covering three standard deviations
// on each side: 2*ceil(3σ)+1. Non-positive sigma yields 1; the radius
// saturates at 2^20 taps so +Inf and huge sigmas stay representable.
func GaussianSize(sigma float32) int {
	if !(sigma > 0) {
		return 1
	}
	half := min(math.Ceil(float64(sigma)*3), maxGaussianHalf)
	return int(half)*2 + 1
}
