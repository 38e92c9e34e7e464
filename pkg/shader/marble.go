package shader

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// Marble is a diffuse shader with a procedural marble display pattern: the
// hit point is projected onto the world axis-plane most perpendicular to the
// normal, and a framed disc of prominent multi-octave veining is drawn over
// a subtle background texture.
type Marble struct {
	lightColor core.Vec3
	darkColor  core.Vec3
	veinColor  core.Vec3
}

// NewMarble builds the shader. The palette is fixed; properties are accepted
// for symmetry with the other shaders but none are read yet.
func NewMarble(mat scene.Material) *Marble {
	return &Marble{
		lightColor: core.NewVec3(0.95, 0.95, 0.95),
		darkColor:  core.NewVec3(0.4, 0.4, 0.6),
		veinColor:  core.NewVec3(0.2, 0.2, 0.3),
	}
}

// Shade samples a uniform hemisphere direction with the marble color as albedo
func (m *Marble) Shade(ray core.Ray, hitPoint, normal core.Vec3, sampler core.Sampler) Scattered {
	onb := core.NewOnb(normal)
	direction := onb.Local(core.SampleUniformHemisphere(sampler.Get2D()))

	color := m.pattern(hitPoint, normal)

	return Scattered{
		Ray:         core.NewRay(hitPoint, direction),
		Attenuation: color.Multiply(1.0 / math.Pi),
		Emitted:     core.Vec3{},
		PDF:         1.0 / (2.0 * math.Pi),
	}
}

// EvaluateDirectLighting is the Lambertian estimate with the marble color
func (m *Marble) EvaluateDirectLighting(ray core.Ray, hitPoint, normal core.Vec3,
	light scene.AreaLight, lightDir core.Vec3, lightDistance float64) core.Vec3 {

	brdf := m.pattern(hitPoint, normal).Multiply(1.0 / math.Pi)
	cosTheta := math.Max(0, normal.Dot(lightDir))
	falloff := 1.0 / (lightDistance * lightDistance)

	return brdf.MultiplyVec(light.Radiance).Multiply(cosTheta * falloff)
}

// BRDF returns the pattern color at the frame origin over π
func (m *Marble) BRDF(wi, wo, normal core.Vec3) core.Vec3 {
	return m.pattern(core.Vec3{}, normal).Multiply(1.0 / math.Pi)
}

// pattern projects the hit point onto an axis plane and composes the framed
// display: prominent marble inside the disc, a black border ring, subtle
// marble outside.
func (m *Marble) pattern(point, normal core.Vec3) core.Vec3 {
	absNormal := normal.Abs()
	var uv core.Vec2

	if absNormal.X > absNormal.Y && absNormal.X > absNormal.Z {
		uv = core.NewVec2(point.Y, point.Z)
	} else if absNormal.Y > absNormal.X && absNormal.Y > absNormal.Z {
		uv = core.NewVec2(point.X, point.Z)
	} else {
		uv = core.NewVec2(point.X, point.Y)
	}

	uv = uv.Multiply(2.0).Add(core.NewVec2(0.5, 0.5))

	center := core.NewVec2(0.5, 0.5)
	const radius = 0.4
	dist := uv.Subtract(center).Length()

	switch {
	case dist < radius:
		return m.prominentMarble(uv)
	case dist < radius+0.1:
		return core.Vec3{} // Border ring
	default:
		return m.subtleMarble(uv)
	}
}

// prominentMarble layers three noise octaves with a strong vein pattern and
// quantizes the result to the three palette colors.
func (m *Marble) prominentMarble(uv core.Vec2) core.Vec3 {
	scaled := uv.Multiply(15.0)

	noise1 := marbleNoise(scaled, 1.0)
	noise2 := marbleNoise(scaled.Multiply(2.0), 0.5)
	noise3 := marbleNoise(scaled.Multiply(4.0), 0.25)
	combined := (noise1 + noise2 + noise3) / 3.0

	vein := veinPattern(scaled)
	combined = combined + (vein-combined)*0.7

	switch {
	case combined > 0.6:
		return m.lightColor
	case combined > 0.3:
		return m.darkColor
	default:
		return m.veinColor
	}
}

// subtleMarble is the low-contrast background blend
func (m *Marble) subtleMarble(uv core.Vec2) core.Vec3 {
	noise := marbleNoise(uv.Multiply(5.0), 1.0)
	return m.lightColor.Multiply(0.8).Lerp(m.darkColor.Multiply(0.8), noise)
}

// marbleNoise is a multi-octave sinusoid normalized to [0,1]
func marbleNoise(point core.Vec2, scale float64) float64 {
	x := point.X * scale
	y := point.Y * scale

	noise := math.Sin(x*0.1 + y*0.05)
	noise += 0.5 * math.Sin(x*0.2+y*0.1)
	noise += 0.25 * math.Sin(x*0.4+y*0.2)
	noise += 0.1 * math.Sin(x*13.0+y*7.0)

	return (noise + 2.0) / 4.0
}

// veinPattern thresholds overlapping sinusoids into hard vein bands
func veinPattern(point core.Vec2) float64 {
	vein1 := math.Sin(point.X*3.0)*0.5 + 0.5
	vein2 := math.Sin(point.Y*2.0+point.X)*0.3 + 0.3
	vein3 := math.Sin(point.X*5.0+point.Y*3.0)*0.2 + 0.2

	combined := (vein1 + vein2 + vein3) / 3.0

	switch {
	case combined > 0.7:
		return 0.0
	case combined > 0.4:
		return 0.5
	default:
		return 1.0
	}
}
