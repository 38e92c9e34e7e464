// Package shader implements the shading and sampling subsystem: one shader
// per material kind, each able to sample an indirect continuation ray,
// evaluate direct lighting toward a known light direction, and report its raw
// BRDF value for a direction pair.
//
// Shaders are immutable after construction; all randomness comes from the
// caller-supplied sampler, so a single shader instance is safe for any number
// of concurrent rendering workers.
package shader

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// Scattered is the result of sampling one indirect bounce.
// PDF is positive whenever Attenuation is non-zero and the continuation is
// physically valid; deterministic (delta) events report PDF = 1.
type Scattered struct {
	Ray         core.Ray  // Continuation ray
	Attenuation core.Vec3 // Throughput multiplier
	Emitted     core.Vec3 // Self-emission term
	PDF         float64   // Density of the sampled direction
}

// Shader is the capability interface implemented by every material variant.
type Shader interface {
	// Shade samples one continuation direction for indirect transport.
	Shade(ray core.Ray, hitPoint, normal core.Vec3, sampler core.Sampler) Scattered

	// EvaluateDirectLighting returns the closed-form contribution of an area
	// light seen along lightDir at lightDistance: BRDF x cosine x inverse
	// square falloff, MIS-weighted where the material defines it.
	EvaluateDirectLighting(ray core.Ray, hitPoint, normal core.Vec3,
		light scene.AreaLight, lightDir core.Vec3, lightDistance float64) core.Vec3

	// BRDF returns the raw reflectance for an explicit direction pair,
	// independent of any sampling strategy.
	BRDF(wi, wo, normal core.Vec3) core.Vec3
}

// reflect mirrors v about the normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract computes the refraction of v through a surface with normal n and
// index ratio niOverNt via the Snell discriminant test. A negative
// discriminant means total internal reflection and reports false.
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// schlick approximates the Fresnel reflectance for the given incidence cosine
// and refractive index
func schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// lightSolidAnglePDF converts an area light's uniform surface density into a
// solid-angle density as seen from the shading point, for MIS weighting.
func lightSolidAnglePDF(light scene.AreaLight, lightDir core.Vec3, lightDistance float64) float64 {
	cosLight := math.Abs(light.Normal().Dot(lightDir))
	return lightDistance * lightDistance / (light.Area()*cosLight + 1e-6)
}
