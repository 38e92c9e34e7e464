package scene

import (
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/geometry"
)

// CameraSettings is the viewpoint a scene recommends for rendering itself.
type CameraSettings struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VerticalFOV float64 // Degrees
}

// Scene owns the primitive, material, texture and light buffers. The buffers
// are immutable once a BVH has been built over them: acceleration-structure
// leaves index into these slices.
type Scene struct {
	Triangles []geometry.Triangle
	Spheres   []geometry.Sphere
	Planes    []geometry.Plane

	Materials []Material
	Textures  []Texture
	Lights    []AreaLight

	Camera     CameraSettings
	Background core.Vec3 // Radiance returned for rays that escape the scene
}

// NewScene creates an empty scene with a default camera
func NewScene() *Scene {
	return &Scene{
		Camera: CameraSettings{
			LookFrom:    core.NewVec3(0, 1, 5),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			VerticalFOV: 45,
		},
	}
}

// AddMaterial appends a material and returns its id
func (s *Scene) AddMaterial(m Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddTexture appends a texture and returns its id
func (s *Scene) AddTexture(t Texture) int {
	s.Textures = append(s.Textures, t)
	return len(s.Textures) - 1
}

// AddTriangle appends a triangle to the primitive buffer
func (s *Scene) AddTriangle(t geometry.Triangle) {
	s.Triangles = append(s.Triangles, t)
}

// AddSphere appends a sphere to the primitive buffer
func (s *Scene) AddSphere(sp geometry.Sphere) {
	s.Spheres = append(s.Spheres, sp)
}

// AddPlane appends a plane to the primitive buffer
func (s *Scene) AddPlane(p geometry.Plane) {
	s.Planes = append(s.Planes, p)
}

// AddLight appends an area light
func (s *Scene) AddLight(l AreaLight) {
	s.Lights = append(s.Lights, l)
}

// PrimitiveCount returns the total number of primitives across all buffers
func (s *Scene) PrimitiveCount() int {
	return len(s.Triangles) + len(s.Spheres) + len(s.Planes)
}
