package shader

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// Metal is a mirror shader with a roughness-controlled blur: the perfect
// reflection direction is blended toward a random hemisphere direction
// centered on itself. Scattering is treated as a quasi-delta event (PDF 1).
type Metal struct {
	albedo    core.Vec3
	roughness float64
}

// NewMetal builds the shader from albedo (default 0.8 grey) and roughness
// (clamped to [0,1], default 0).
func NewMetal(mat scene.Material) *Metal {
	roughness := mat.Properties.FloatOr("roughness", 0)
	return &Metal{
		albedo:    mat.Properties.RGBOr("albedo", core.NewVec3(0.8, 0.8, 0.8)),
		roughness: max(0.0, min(1.0, roughness)),
	}
}

// Shade reflects the ray and perturbs the result by roughness
func (m *Metal) Shade(ray core.Ray, hitPoint, normal core.Vec3, sampler core.Sampler) Scattered {
	incident := ray.Direction.Normalize()
	perfect := reflect(incident, normal)

	direction := m.perturb(perfect, sampler)
	if direction.Dot(normal) < 0 {
		// Blended direction points into the surface
		direction = perfect
	}

	return Scattered{
		Ray:         core.NewRay(hitPoint, direction),
		Attenuation: m.albedo,
		Emitted:     core.Vec3{},
		PDF:         1.0,
	}
}

// perturb blends the perfect reflection toward a random direction in the
// hemisphere around it, by roughness.
func (m *Metal) perturb(perfect core.Vec3, sampler core.Sampler) core.Vec3 {
	if m.roughness < 0.001 {
		return perfect
	}

	onb := core.NewOnb(perfect)
	perturbed := onb.Local(core.SampleUniformHemisphere(sampler.Get2D())).Normalize()

	return perfect.Lerp(perturbed, m.roughness).Normalize()
}

// EvaluateDirectLighting approximates a glossy highlight: the light direction
// is compared against the perfect reflection and sharpened by 1/roughness.
func (m *Metal) EvaluateDirectLighting(ray core.Ray, hitPoint, normal core.Vec3,
	light scene.AreaLight, lightDir core.Vec3, lightDistance float64) core.Vec3 {

	incident := ray.Direction.Normalize()
	perfect := reflect(incident, normal)

	alignment := math.Max(0, perfect.Dot(lightDir))
	specular := math.Pow(alignment, 1.0/(m.roughness+0.001))
	falloff := 1.0 / (lightDistance * lightDistance)

	return m.albedo.MultiplyVec(light.Radiance).Multiply(specular * falloff)
}

// BRDF approximates the metal reflectance by the alignment of wi with the
// mirror direction of wo, sharpened by 1/roughness.
func (m *Metal) BRDF(wi, wo, normal core.Vec3) core.Vec3 {
	perfect := reflect(wo, normal)
	alignment := math.Max(0, perfect.Dot(wi))
	specular := math.Pow(alignment, 1.0/(m.roughness+0.001))
	return m.albedo.Multiply(specular)
}
