package geometry

import (
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
)

// Triangle is a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	MaterialID int
	normal     core.Vec3 // Cached geometric normal
}

// NewTriangle creates a new triangle and precomputes its normal
func NewTriangle(v0, v1, v2 core.Vec3, materialID int) Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return Triangle{
		V0:         v0,
		V1:         v1,
		V2:         v2,
		MaterialID: materialID,
		normal:     edge1.Cross(edge2).Normalize(),
	}
}

// Normal returns the cached geometric normal
func (t Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests the ray against the triangle using the Möller-Trumbore algorithm
func (t Triangle) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Determinant near zero: ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	return &HitRecord{
		T:          tHit,
		Point:      ray.At(tHit),
		Normal:     t.normal,
		MaterialID: t.MaterialID,
	}, true
}

// BoundingBox returns the union of the three vertices
func (t Triangle) BoundingBox() core.AABB {
	box := core.NewEmptyAABB()
	box.ExpandPoint(t.V0)
	box.ExpandPoint(t.V1)
	box.ExpandPoint(t.V2)
	return box
}
