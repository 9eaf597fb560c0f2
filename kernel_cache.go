package cv

import "sync"

// gaussianCache holds 1D Gaussian kernels keyed by sigma quantized to
// 0.01. Cached slices are shared and must not be modified.
type gaussianCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultGaussianCache = newGaussianCache(64)

// maxCachedSigma bounds cached kernels to GaussianSize(maxCachedSigma)
// taps. Larger sigmas get the identity kernel.
const maxCachedSigma = 1000

func newGaussianCache(maxLen int) *gaussianCache {
	return &gaussianCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

func (c *gaussianCache) get(sigma float32) []float32 {
	if !(sigma >= 0.01) || sigma > maxCachedSigma {
		return []float32{1}
	}
	key := int(sigma * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	// Sample at the quantized sigma so every caller of a key sees the
	// same weights.
	q := float32(key) / 100
	kernel, err := GaussianKernel1D(GaussianSize(q), q)
	if err != nil {
		return []float32{1}
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Evict half the entries; map order makes the choice arbitrary.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

func (c *gaussianCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel1D returns a shared Gaussian kernel of size
// GaussianSize(sigma). Sigma is quantized to 0.01; sigma below 0.01,
// above 1000, NaN or +Inf yields the identity kernel [1].
//
// The returned slice must be treated as read-only.
func CachedGaussianKernel1D(sigma float32) []float32 {
	return defaultGaussianCache.get(sigma)
}
