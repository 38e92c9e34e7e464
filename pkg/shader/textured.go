package shader

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// TexturedLambertian is a diffuse shader whose albedo varies across the
// surface. Real texture-buffer sampling is not wired up yet; when the
// material names a valid texture id the base color is modulated by a
// procedural stand-in pattern so textured materials remain distinguishable
// in renders.
type TexturedLambertian struct {
	baseColor  core.Vec3
	textureID  int
	hasTexture bool
}

// NewTexturedLambertian builds the shader from diffuseColor (default mid
// grey) and textureId, validated against the scene's texture buffer.
func NewTexturedLambertian(mat scene.Material, textures []scene.Texture) *TexturedLambertian {
	textureID := mat.Properties.IntOr("textureId", -1)
	return &TexturedLambertian{
		baseColor:  mat.Properties.RGBOr("diffuseColor", core.NewVec3(0.5, 0.5, 0.5)),
		textureID:  textureID,
		hasTexture: textureID >= 0 && textureID < len(textures),
	}
}

// Shade samples a uniform hemisphere direction, with the surface color
// evaluated at the hit point.
func (t *TexturedLambertian) Shade(ray core.Ray, hitPoint, normal core.Vec3, sampler core.Sampler) Scattered {
	onb := core.NewOnb(normal)
	direction := onb.Local(core.SampleUniformHemisphere(sampler.Get2D()))

	color := t.colorAt(hitPoint, normal)

	return Scattered{
		Ray:         core.NewRay(hitPoint, direction),
		Attenuation: color.Multiply(1.0 / math.Pi),
		Emitted:     core.Vec3{},
		PDF:         1.0 / (2.0 * math.Pi),
	}
}

// EvaluateDirectLighting is the Lambertian estimate with the spatially
// varying color.
func (t *TexturedLambertian) EvaluateDirectLighting(ray core.Ray, hitPoint, normal core.Vec3,
	light scene.AreaLight, lightDir core.Vec3, lightDistance float64) core.Vec3 {

	brdf := t.colorAt(hitPoint, normal).Multiply(1.0 / math.Pi)
	cosTheta := math.Max(0, normal.Dot(lightDir))
	falloff := 1.0 / (lightDistance * lightDistance)

	return brdf.MultiplyVec(light.Radiance).Multiply(cosTheta * falloff)
}

// BRDF returns the base reflectance; without a hit point the pattern cannot
// be evaluated, so the flat base color stands in.
func (t *TexturedLambertian) BRDF(wi, wo, normal core.Vec3) core.Vec3 {
	return t.baseColor.Multiply(1.0 / math.Pi)
}

// colorAt returns the surface color at a hit point. The stand-in pattern
// modulates the base color with a sinusoid of the projected UV coordinates.
func (t *TexturedLambertian) colorAt(point, normal core.Vec3) core.Vec3 {
	if !t.hasTexture {
		return t.baseColor
	}
	// TODO: sample Texture.Pixels at uv once UV-mapped primitives land; the
	// checkerboard scenes only need the modulation.
	uv := projectUV(point, normal)
	return t.baseColor.Multiply(0.7 + 0.3*math.Sin(uv.X*2*math.Pi)*math.Cos(uv.Y*2*math.Pi))
}

// projectUV projects a hit point onto the world axis-plane most
// perpendicular to the normal and wraps the result to [0,1).
func projectUV(point, normal core.Vec3) core.Vec2 {
	absNormal := normal.Abs()
	var uv core.Vec2

	if absNormal.X > absNormal.Y && absNormal.X > absNormal.Z {
		uv = core.NewVec2(point.Y, point.Z)
	} else if absNormal.Y > absNormal.X && absNormal.Y > absNormal.Z {
		uv = core.NewVec2(point.X, point.Z)
	} else {
		uv = core.NewVec2(point.X, point.Y)
	}

	uv = uv.Multiply(0.01)
	uv.X -= math.Floor(uv.X)
	uv.Y -= math.Floor(uv.Y)
	if uv.X < 0 {
		uv.X += 1
	}
	if uv.Y < 0 {
		uv.Y += 1
	}
	return uv
}
