package scene

import (
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/geometry"
)

// addQuad adds a parallelogram as two triangles. The face normal follows
// u × v, so pick the edge order to aim it at the viewer.
func addQuad(s *Scene, corner, u, v core.Vec3, materialID int) {
	c1 := corner.Add(u)
	c2 := corner.Add(u).Add(v)
	c3 := corner.Add(v)
	s.AddTriangle(geometry.NewTriangle(corner, c1, c2, materialID))
	s.AddTriangle(geometry.NewTriangle(corner, c2, c3, materialID))
}

// NewCornellScene builds the classic Cornell box: white floor, ceiling and
// back wall, red left wall, green right wall, one metal and one glass sphere
// under a ceiling area light.
func NewCornellScene() *Scene {
	s := NewScene()
	s.Camera = CameraSettings{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 278),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 40,
	}
	s.Background = core.Vec3{}

	white := NewMaterial("white", KindLambertian)
	white.Properties.SetRGB("diffuseColor", core.NewVec3(0.73, 0.73, 0.73))
	red := NewMaterial("red", KindLambertian)
	red.Properties.SetRGB("diffuseColor", core.NewVec3(0.65, 0.05, 0.05))
	green := NewMaterial("green", KindLambertian)
	green.Properties.SetRGB("diffuseColor", core.NewVec3(0.12, 0.45, 0.15))
	mirror := NewMaterial("mirror", KindMetal)
	mirror.Properties.
		SetRGB("albedo", core.NewVec3(0.9, 0.9, 0.9)).
		SetFloat("roughness", 0.05)
	glass := NewMaterial("glass", KindDielectric)
	glass.Properties.SetFloat("refractiveIndex", 1.5)

	whiteID := s.AddMaterial(white)
	redID := s.AddMaterial(red)
	greenID := s.AddMaterial(green)
	mirrorID := s.AddMaterial(mirror)
	glassID := s.AddMaterial(glass)

	const boxSize = 555.0

	// Floor, normal up
	addQuad(s,
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		whiteID)

	// Ceiling, normal down
	addQuad(s,
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		whiteID)

	// Back wall, normal toward the camera
	addQuad(s,
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		whiteID)

	// Left wall (red), normal +x
	addQuad(s,
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		redID)

	// Right wall (green), normal -x
	addQuad(s,
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		greenID)

	s.AddSphere(geometry.NewSphere(core.NewVec3(185, 90, 190), 90, mirrorID))
	s.AddSphere(geometry.NewSphere(core.NewVec3(370, 90, 350), 90, glassID))

	// Ceiling light, normal down (u × v = -y)
	s.AddLight(NewAreaLight(
		core.NewVec3(213, 554, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15)))

	return s
}
