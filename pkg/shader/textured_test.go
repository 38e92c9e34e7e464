package shader

import (
	"math"
	"testing"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

func TestTexturedLambertian_WithoutTexture(t *testing.T) {
	mat := scene.NewMaterial("flat", scene.KindTextured)
	mat.Properties.SetRGB("diffuseColor", core.NewVec3(0.6, 0.2, 0.2))
	shader := NewTexturedLambertian(mat, nil)

	if shader.hasTexture {
		t.Error("Expected no texture without a textureId")
	}

	// Plain diffuse behavior with the flat base color
	scattered := shader.Shade(
		core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
		core.NewVec3(3, 0, 7), core.NewVec3(0, 1, 0), newSampler())

	expected := core.NewVec3(0.6, 0.2, 0.2).Multiply(1.0 / math.Pi)
	if !vecsEqual(scattered.Attenuation, expected, 1e-12) {
		t.Errorf("Expected flat albedo/π, got %v", scattered.Attenuation)
	}
}

func TestTexturedLambertian_InvalidTextureID(t *testing.T) {
	mat := scene.NewMaterial("broken", scene.KindTextured)
	mat.Properties.SetInt("textureId", 5)

	// Out-of-range id degrades to the flat color instead of panicking
	shader := NewTexturedLambertian(mat, []scene.Texture{scene.NewTexture(1, 1, []core.Vec3{{}})})
	if shader.hasTexture {
		t.Error("Expected out-of-range textureId to be rejected")
	}
}

func TestTexturedLambertian_PatternVariesOverSurface(t *testing.T) {
	mat := scene.NewMaterial("patterned", scene.KindTextured)
	mat.Properties.
		SetRGB("diffuseColor", core.NewVec3(0.8, 0.8, 0.8)).
		SetInt("textureId", 0)
	shader := NewTexturedLambertian(mat, []scene.Texture{scene.NewTexture(1, 1, []core.Vec3{{}})})

	if !shader.hasTexture {
		t.Fatal("Expected texture to be accepted")
	}

	normal := core.NewVec3(0, 1, 0)
	a := shader.colorAt(core.NewVec3(0, 0, 0), normal)
	b := shader.colorAt(core.NewVec3(15, 0, 0), normal)
	if vecsEqual(a, b, 1e-9) {
		t.Errorf("Expected the pattern to vary over the surface, both gave %v", a)
	}

	// The pattern follows the projected UVs, so it repeats with their period
	c := shader.colorAt(core.NewVec3(100, 0, 0), normal)
	if !vecsEqual(a, c, 1e-9) {
		t.Errorf("Expected the pattern to wrap with the UV projection, got %v and %v", a, c)
	}
}

func TestProjectUV_Wraps(t *testing.T) {
	tests := []struct {
		point  core.Vec3
		normal core.Vec3
	}{
		{core.NewVec3(250, 0, -130), core.NewVec3(0, 1, 0)},
		{core.NewVec3(-5, 42, 99), core.NewVec3(1, 0, 0)},
		{core.NewVec3(1000, -1000, 3), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		uv := projectUV(tt.point, tt.normal)
		if uv.X < 0 || uv.X >= 1 || uv.Y < 0 || uv.Y >= 1 {
			t.Errorf("UV out of [0,1) for point %v: %v", tt.point, uv)
		}
	}
}
