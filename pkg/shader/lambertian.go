package shader

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// Lambertian is the ideal diffuse shader: constant BRDF albedo/π.
//
// Indirect bounces are sampled uniformly over the hemisphere and reported
// with the matching PDF 1/(2π). This pairing is kept for output
// compatibility with previous renders; the cosine-weighted sampler in
// pkg/core is the alternative if variance matters more than parity.
type Lambertian struct {
	albedo core.Vec3
}

// NewLambertian builds the shader from a material's diffuseColor property
// (default white).
func NewLambertian(mat scene.Material) *Lambertian {
	return &Lambertian{
		albedo: mat.Properties.RGBOr("diffuseColor", core.NewVec3(1, 1, 1)),
	}
}

// Shade samples a uniform hemisphere direction around the normal
func (l *Lambertian) Shade(ray core.Ray, hitPoint, normal core.Vec3, sampler core.Sampler) Scattered {
	onb := core.NewOnb(normal)
	direction := onb.Local(core.SampleUniformHemisphere(sampler.Get2D())).Normalize()

	return Scattered{
		Ray:         core.NewRay(hitPoint, direction),
		Attenuation: l.albedo.Multiply(1.0 / math.Pi),
		Emitted:     core.Vec3{},
		PDF:         1.0 / (2.0 * math.Pi),
	}
}

// EvaluateDirectLighting returns BRDF x radiance x cosθ / distance²
func (l *Lambertian) EvaluateDirectLighting(ray core.Ray, hitPoint, normal core.Vec3,
	light scene.AreaLight, lightDir core.Vec3, lightDistance float64) core.Vec3 {

	brdf := l.albedo.Multiply(1.0 / math.Pi)
	cosTheta := math.Max(0, normal.Dot(lightDir))
	falloff := 1.0 / (lightDistance * lightDistance)

	return brdf.MultiplyVec(light.Radiance).Multiply(cosTheta * falloff)
}

// BRDF returns the constant albedo/π
func (l *Lambertian) BRDF(wi, wo, normal core.Vec3) core.Vec3 {
	return l.albedo.Multiply(1.0 / math.Pi)
}
