package core

import "math"

// Sampling functions map uniform [0,1) sample points onto directions in the
// canonical frame (z up). Callers transform the result into world space with
// an Onb built around the surface normal.

// SampleUniformHemisphere maps a 2D sample to a direction distributed
// uniformly over the upper hemisphere (PDF = 1/(2π)).
func SampleUniformHemisphere(sample Vec2) Vec3 {
	z := sample.X // cosθ uniform in [0,1)
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleCosineHemisphere maps a 2D sample to a cosine-weighted direction
// over the upper hemisphere (PDF = cosθ/π).
func SampleCosineHemisphere(sample Vec2) Vec3 {
	r := math.Sqrt(sample.X)
	phi := 2.0 * math.Pi * sample.Y

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(math.Max(0, 1.0-sample.X))

	return NewVec3(x, y, z)
}

// SampleGGXHalfVector maps a 2D sample to a microfacet half-vector drawn
// from the GGX normal distribution with the given alpha
// (PDF over half-vectors = D(h)·cosθ_h).
func SampleGGXHalfVector(alpha float64, sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	cosTheta := math.Sqrt((1.0 - sample.Y) / (1.0 + (alpha*alpha-1.0)*sample.Y))
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	return NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// BalanceHeuristic combines two sampling strategies' densities into the MIS
// weight for the first one.
func BalanceHeuristic(pdfA, pdfB float64) float64 {
	weight := pdfA / (pdfA + pdfB + 1e-6)
	return max(0.0, min(1.0, weight))
}
