package cv

import (
	"fmt"
	"math"
	"strings"
)

// Kernel is an immutable 2D convolution weight matrix with odd dimensions.
// Weights are stored row-major; the center tap is at (Height()/2, Width()/2).
//
// A Kernel is never decomposed automatically. Callers wanting the cheaper
// separable path pass 1D kernels to ConvolveSeparable directly.
type Kernel struct {
	width   int
	height  int
	weights []float32
}

// NewKernel creates a kernel from row-major weights. The slice is copied.
func NewKernel(width, height int, weights []float32) (*Kernel, error) {
	if width <= 0 || height <= 0 || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive and odd", ErrInvalidKernel, width, height)
	}
	if len(weights) != width*height {
		return nil, fmt.Errorf("%w: got %d weights, want %d", ErrInvalidKernel, len(weights), width*height)
	}
	if i := firstNonFinite(weights); i >= 0 {
		return nil, fmt.Errorf("%w: weight %d is %v", ErrInvalidKernel, i, weights[i])
	}

	w := make([]float32, len(weights))
	copy(w, weights)
	return &Kernel{width: width, height: height, weights: w}, nil
}

// mustKernel builds one of the fixed builtin kernels.
func mustKernel(width, height int, weights []float32) *Kernel {
	k, err := NewKernel(width, height, weights)
	if err != nil {
		panic(err)
	}
	return k
}

func firstNonFinite(w []float32) int {
	for i, v := range w {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return i
		}
	}
	return -1
}

// Width returns the number of kernel columns.
func (k *Kernel) Width() int {
	return k.width
}

// Height returns the number of kernel rows.
func (k *Kernel) Height() int {
	return k.height
}

// Weights returns a copy of the row-major weights.
func (k *Kernel) Weights() []float32 {
	w := make([]float32, len(k.weights))
	copy(w, k.weights)
	return w
}

// At returns the weight at the given kernel row and column.
func (k *Kernel) At(row, col int) float32 {
	return k.weights[row*k.width+col]
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, v := range k.weights {
		sum += float64(v)
	}
	return sum
}

// valid reports whether k was built through NewKernel.
func (k *Kernel) valid() bool {
	return k != nil && k.width > 0 && k.height > 0 && len(k.weights) == k.width*k.height
}

// String formats the kernel as rows separated by semicolons.
func (k *Kernel) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Kernel(%dx%d)[", k.width, k.height)
	for row := 0; row < k.height; row++ {
		if row > 0 {
			sb.WriteString("; ")
		}
		for col := 0; col < k.width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", k.At(row, col))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Identity returns a size×size kernel with weight 1 at the center.
func Identity(size int) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: identity size %d must be positive and odd", ErrInvalidKernel, size)
	}
	w := make([]float32, size*size)
	w[(size/2)*size+size/2] = 1
	return &Kernel{width: size, height: size, weights: w}, nil
}

// BoxBlur returns a size×size averaging kernel with weight 1/(size*size).
func BoxBlur(size int) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: box size %d must be positive and odd", ErrInvalidKernel, size)
	}
	n := size * size
	v := float32(1.0 / float64(n))
	w := make([]float32, n)
	for i := range w {
		w[i] = v
	}
	return &Kernel{width: size, height: size, weights: w}, nil
}

// Gaussian returns a size×size kernel sampled from exp(-(dx²+dy²)/(2σ²))
// at each tap offset and normalized to sum to 1.
func Gaussian(size int, sigma float32) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: gaussian size %d must be positive and odd", ErrInvalidKernel, size)
	}
	if !(sigma > 0) || math.IsInf(float64(sigma), 0) {
		return nil, fmt.Errorf("%w: gaussian sigma %v must be positive and finite", ErrInvalidKernel, sigma)
	}

	half := size / 2
	twoSigmaSq := 2 * float64(sigma) * float64(sigma)
	samples := make([]float64, 0, size*size)
	var sum float64
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			v := math.Exp(-float64(dx*dx+dy*dy) / twoSigmaSq)
			samples = append(samples, v)
			sum += v
		}
	}

	w := make([]float32, len(samples))
	for i, v := range samples {
		w[i] = float32(v / sum)
	}
	return &Kernel{width: size, height: size, weights: w}, nil
}

// SobelX returns the 3×3 horizontal gradient kernel.
func SobelX() *Kernel {
	return mustKernel(3, 3, []float32{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
}

// SobelY returns the 3×3 vertical gradient kernel (transpose of SobelX).
func SobelY() *Kernel {
	return mustKernel(3, 3, []float32{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
}

// Laplacian returns the 4-connected 3×3 Laplacian.
func Laplacian() *Kernel {
	return mustKernel(3, 3, []float32{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
}

// Laplacian8 returns the 8-connected 3×3 Laplacian.
func Laplacian8() *Kernel {
	return mustKernel(3, 3, []float32{
		1, 1, 1,
		1, -8, 1,
		1, 1, 1,
	})
}

// Sharpen returns identity minus the 4-connected Laplacian.
func Sharpen() *Kernel {
	return mustKernel(3, 3, []float32{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	})
}

// OuterProduct builds the 2D kernel whose weight at (row j, col i) is
// kernelY[j]*kernelX[i]. Convolving with it matches ConvolveSeparable with
// the same vectors up to rounding.
func OuterProduct(kernelX, kernelY []float32) (*Kernel, error) {
	if err := checkKernel1D(kernelX); err != nil {
		return nil, fmt.Errorf("%w: kernelX: %v", ErrInvalidKernel, err)
	}
	if err := checkKernel1D(kernelY); err != nil {
		return nil, fmt.Errorf("%w: kernelY: %v", ErrInvalidKernel, err)
	}

	w := make([]float32, 0, len(kernelX)*len(kernelY))
	for _, wy := range kernelY {
		for _, wx := range kernelX {
			w = append(w, wy*wx)
		}
	}
	return &Kernel{width: len(kernelX), height: len(kernelY), weights: w}, nil
}
