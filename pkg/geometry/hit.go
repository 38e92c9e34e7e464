package geometry

import "github.com/Cong-Fanghao/NKU-CG/pkg/core"

// HitRecord describes the nearest ray-surface intersection found so far.
// A miss is represented by (nil, false) from the intersection routines, never
// by a sentinel record.
//
// Normal is the geometric outward normal of the surface, not flipped toward
// the ray: refractive shaders detect entering vs exiting by the sign of
// dot(ray.Direction, Normal).
type HitRecord struct {
	T          float64   // Ray parameter of the hit
	Point      core.Vec3 // World-space hit position
	Normal     core.Vec3 // Geometric outward normal (unit length)
	MaterialID int       // Index into the scene's material table
}
