package core

import "math/rand"

// Sampler produces the random values that drive shader sampling decisions.
// Samplers carry sequence state and are not safe for concurrent use: each
// rendering worker owns its own instance.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go pseudo-random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// haltonPrimes are the bases used for the first dimensions of the Halton
// sequence. Base 2 serves 1D draws; 2/3 serve 2D; 2/3/5 serve 3D.
var haltonPrimes = [...]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// HaltonSampler generates low-discrepancy sample points from the Halton
// sequence. All dimensions of one draw share a single running index, which
// advances once per Get call.
type HaltonSampler struct {
	index int
}

// NewHaltonSampler creates a Halton sampler starting at index 0
func NewHaltonSampler() *HaltonSampler {
	return &HaltonSampler{}
}

// Reset rewinds the sequence to its start
func (h *HaltonSampler) Reset() {
	h.index = 0
}

// Get1D returns the next base-2 radical inverse
func (h *HaltonSampler) Get1D() float64 {
	result := radicalInverse(haltonPrimes[0], h.index)
	h.index++
	return result
}

// Get2D returns the next (base-2, base-3) sample point
func (h *HaltonSampler) Get2D() Vec2 {
	result := NewVec2(
		radicalInverse(haltonPrimes[0], h.index),
		radicalInverse(haltonPrimes[1], h.index),
	)
	h.index++
	return result
}

// Get3D returns the next (base-2, base-3, base-5) sample point
func (h *HaltonSampler) Get3D() Vec3 {
	result := NewVec3(
		radicalInverse(haltonPrimes[0], h.index),
		radicalInverse(haltonPrimes[1], h.index),
		radicalInverse(haltonPrimes[2], h.index),
	)
	h.index++
	return result
}

// radicalInverse mirrors the digits of index in the given base around the
// radix point, producing the Halton sequence value in [0, 1).
func radicalInverse(base, index int) float64 {
	result := 0.0
	f := 1.0
	for i := index; i > 0; i /= base {
		f /= float64(base)
		result += f * float64(i%base)
	}
	return result
}
