package geometry

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
)

// Sphere is a sphere defined by center and radius
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	MaterialID int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialID int) Sphere {
	return Sphere{Center: center, Radius: radius, MaterialID: materialID}
}

// Hit tests the ray against the sphere by solving the quadratic at² + 2bt + c = 0
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearer root first, farther root if the near one is out of range
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &HitRecord{
		T:          root,
		Point:      point,
		Normal:     point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		MaterialID: s.MaterialID,
	}, true
}

// BoundingBox returns center ± radius on each axis
func (s Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
