package scene

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/geometry"
)

// NewShowcaseScene lines up one sphere per material kind over a textured
// floor with a marble back wall, so a single frame exercises every shader.
func NewShowcaseScene() *Scene {
	s := NewScene()
	s.Camera = CameraSettings{
		LookFrom:    core.NewVec3(0, 3, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 45,
	}
	s.Background = core.NewVec3(0.05, 0.05, 0.08)

	floor := NewMaterial("floor", KindTextured)
	floor.Properties.
		SetRGB("diffuseColor", core.NewVec3(0.6, 0.6, 0.55)).
		SetInt("textureId", s.AddTexture(checkerTexture(64)))
	backdrop := NewMaterial("backdrop", KindMarble)

	diffuse := NewMaterial("clay", KindLambertian)
	diffuse.Properties.SetRGB("diffuseColor", core.NewVec3(0.7, 0.25, 0.2))
	brushed := NewMaterial("brushed", KindMetal)
	brushed.Properties.
		SetRGB("albedo", core.NewVec3(0.85, 0.75, 0.55)).
		SetFloat("roughness", 0.25)
	glass := NewMaterial("glass", KindDielectric)
	glass.Properties.SetFloat("refractiveIndex", 1.5)
	principled := NewMaterial("principled", KindDisney)
	principled.Properties.
		SetRGB("baseColor", core.NewVec3(0.3, 0.5, 0.8)).
		SetFloat("metallic", 0.9).
		SetFloat("roughness", 0.2).
		SetFloat("clearcoat", 0.5)
	stone := NewMaterial("stone", KindMarble)

	floorID := s.AddMaterial(floor)
	backdropID := s.AddMaterial(backdrop)
	diffuseID := s.AddMaterial(diffuse)
	brushedID := s.AddMaterial(brushed)
	glassID := s.AddMaterial(glass)
	principledID := s.AddMaterial(principled)
	stoneID := s.AddMaterial(stone)

	s.AddPlane(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floorID))
	s.AddPlane(geometry.NewPlane(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), backdropID))

	for i, id := range []int{diffuseID, brushedID, glassID, principledID, stoneID} {
		x := float64(i-2) * 2.2
		s.AddSphere(geometry.NewSphere(core.NewVec3(x, 1, 0), 1, id))
	}

	// Overhead light tilted toward the spheres, normal down
	s.AddLight(NewAreaLight(
		core.NewVec3(-2, 7, 1),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 0, 3),
		core.NewVec3(12, 12, 12)))

	return s
}

// checkerTexture generates a small procedural checker image for the textured
// material path.
func checkerTexture(size int) Texture {
	pixels := make([]core.Vec3, size*size)
	light := core.NewVec3(0.8, 0.8, 0.8)
	dark := core.NewVec3(0.25, 0.25, 0.3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := (x/8 + y/8) % 2
			if cell == 0 {
				pixels[y*size+x] = light
			} else {
				pixels[y*size+x] = dark
			}
		}
	}
	return NewTexture(size, size, pixels)
}

// NewSphereGridScene packs a jittered grid of diffuse spheres under one
// light. It exists to give the BVH something deep to chew on, both in the
// info command and in benchmarks.
func NewSphereGridScene(side int) *Scene {
	s := NewScene()
	s.Camera = CameraSettings{
		LookFrom:    core.NewVec3(0, float64(side), float64(side)*2),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 45,
	}
	s.Background = core.NewVec3(0.1, 0.1, 0.12)

	mat := NewMaterial("grid", KindLambertian)
	mat.Properties.SetRGB("diffuseColor", core.NewVec3(0.6, 0.6, 0.6))
	matID := s.AddMaterial(mat)

	half := float64(side-1) / 2
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			// Deterministic jitter keeps the grid from degenerating
			// into axis-aligned slabs.
			jitter := 0.3 * math.Sin(float64(x*7+z*13))
			center := core.NewVec3(
				(float64(x)-half)*1.5+jitter,
				0.5+0.25*math.Cos(float64(x+z)),
				(float64(z)-half)*1.5-jitter)
			s.AddSphere(geometry.NewSphere(center, 0.5, matID))
		}
	}

	s.AddLight(NewAreaLight(
		core.NewVec3(-3, float64(side)+4, -3),
		core.NewVec3(6, 0, 0),
		core.NewVec3(0, 0, 6),
		core.NewVec3(10, 10, 10)))

	return s
}
