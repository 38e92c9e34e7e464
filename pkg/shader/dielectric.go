package shader

import (
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// Directions within this cosine of the exact reflection or refraction
// direction are treated as coincident with the delta lobe.
const deltaCosineThreshold = 0.9999

// Dielectric is the refractive shader: full Fresnel/Snell treatment with a
// stochastic choice between reflection and refraction.
type Dielectric struct {
	refractiveIndex float64
	attenuation     core.Vec3
}

// NewDielectric builds the shader from refractiveIndex (default 1.5, glass)
// and an attenuation color for tinted glass (default clear).
func NewDielectric(mat scene.Material) *Dielectric {
	return &Dielectric{
		refractiveIndex: mat.Properties.FloatOr("refractiveIndex", 1.5),
		attenuation:     mat.Properties.RGBOr("attenuation", core.NewVec3(1, 1, 1)),
	}
}

// orientation resolves which side of the surface the ray is on: the working
// normal (flipped to oppose the ray), the index ratio ni/nt and the cosine
// used by the Fresnel term.
func (d *Dielectric) orientation(direction, normal core.Vec3) (outwardNormal core.Vec3, niOverNt, cosine float64) {
	if direction.Dot(normal) > 0 {
		// Exiting the medium
		outwardNormal = normal.Negate()
		niOverNt = d.refractiveIndex
		cosine = d.refractiveIndex * direction.Dot(normal) / direction.Length()
	} else {
		// Entering the medium
		outwardNormal = normal
		niOverNt = 1.0 / d.refractiveIndex
		cosine = -direction.Dot(normal) / direction.Length()
	}
	return outwardNormal, niOverNt, cosine
}

// Shade refracts or reflects the ray, choosing stochastically with
// probability equal to the Fresnel reflectance. Total internal reflection
// forces the reflection branch.
func (d *Dielectric) Shade(ray core.Ray, hitPoint, normal core.Vec3, sampler core.Sampler) Scattered {
	reflected := reflect(ray.Direction, normal)
	outwardNormal, niOverNt, cosine := d.orientation(ray.Direction, normal)

	refracted, canRefract := refract(ray.Direction, outwardNormal, niOverNt)
	reflectProb := 1.0
	if canRefract {
		reflectProb = schlick(cosine, d.refractiveIndex)
	}

	attenuation := d.attenuation
	var scattered core.Ray
	if sampler.Get1D() < reflectProb {
		scattered = core.NewRay(hitPoint, reflected)
	} else {
		scattered = core.NewRay(hitPoint, refracted)
		// Radiance transport scaling across the index boundary
		attenuation = attenuation.Multiply(niOverNt * niOverNt)
	}

	// One branch was chosen with its own probability, so the sample is a
	// delta event with density 1
	return Scattered{
		Ray:         scattered,
		Attenuation: attenuation,
		Emitted:     core.Vec3{},
		PDF:         1.0,
	}
}

// EvaluateDirectLighting treats the BRDF as a pair of delta lobes: the light
// contributes only when its direction coincides with the exact reflection or
// refraction direction, weighted by the Fresnel split and balanced against
// the light's solid-angle density.
func (d *Dielectric) EvaluateDirectLighting(ray core.Ray, hitPoint, normal core.Vec3,
	light scene.AreaLight, lightDir core.Vec3, lightDistance float64) core.Vec3 {

	reflected := reflect(ray.Direction, normal).Normalize()
	outwardNormal, niOverNt, cosine := d.orientation(ray.Direction, normal)

	refracted, canRefract := refract(ray.Direction, outwardNormal, niOverNt)
	reflectProb := 1.0
	if canRefract {
		reflectProb = schlick(cosine, d.refractiveIndex)
	}

	falloff := 1.0 / (lightDistance * lightDistance)
	lightPDF := lightSolidAnglePDF(light, lightDir, lightDistance)
	misWeight := core.BalanceHeuristic(1.0, lightPDF)

	dir := lightDir.Normalize()
	if dir.Dot(reflected) > deltaCosineThreshold {
		return d.attenuation.MultiplyVec(light.Radiance).
			Multiply(reflectProb * misWeight * falloff)
	}
	if canRefract && dir.Dot(refracted.Normalize()) > deltaCosineThreshold {
		transmission := (1.0 - reflectProb) * niOverNt * niOverNt
		return d.attenuation.MultiplyVec(light.Radiance).
			Multiply(transmission * misWeight * falloff)
	}

	return core.Vec3{}
}

// BRDF reports the delta lobes for an explicit direction pair: non-zero only
// when wi coincides with the exact reflection or refraction of wo.
func (d *Dielectric) BRDF(wi, wo, normal core.Vec3) core.Vec3 {
	incident := wo.Negate()
	reflected := reflect(incident, normal).Normalize()
	outwardNormal, niOverNt, cosine := d.orientation(incident, normal)

	refracted, canRefract := refract(incident, outwardNormal, niOverNt)
	reflectProb := 1.0
	if canRefract {
		reflectProb = schlick(cosine, d.refractiveIndex)
	}

	dir := wi.Normalize()
	if dir.Dot(reflected) > deltaCosineThreshold {
		return d.attenuation.Multiply(reflectProb)
	}
	if canRefract && dir.Dot(refracted.Normalize()) > deltaCosineThreshold {
		return d.attenuation.Multiply((1.0 - reflectProb) * niOverNt * niOverNt)
	}

	return core.Vec3{}
}
