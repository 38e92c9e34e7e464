package geometry

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
)

// Plane bounding proxy extents. Planes are conceptually infinite; the proxy
// box is thin along the axis the normal mostly points down and wide on the
// other two, so planes still participate in bounding-volume culling.
const (
	planeProxyHalfWidth = 1000.0
	planeProxyThickness = 0.1
)

// Plane is an infinite plane defined by a point and a normal
type Plane struct {
	Point      core.Vec3
	Normal     core.Vec3
	MaterialID int
}

// NewPlane creates a new plane with a normalized normal
func NewPlane(point, normal core.Vec3, materialID int) Plane {
	return Plane{Point: point, Normal: normal.Normalize(), MaterialID: materialID}
}

// Hit tests the ray against the plane
func (p Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	return &HitRecord{
		T:          t,
		Point:      ray.At(t),
		Normal:     p.Normal,
		MaterialID: p.MaterialID,
	}, true
}

// BoundingBox returns the finite proxy box for the infinite plane: thin along
// the axis most aligned with the normal, wide on the other two.
func (p Plane) BoundingBox() core.AABB {
	box := core.NewEmptyAABB()
	n := p.Normal.Abs()

	for axis := 0; axis < 3; axis++ {
		center := p.Point.Axis(axis)
		half := planeProxyHalfWidth
		if n.Axis(axis) > 0.9 {
			half = planeProxyThickness
		}
		switch axis {
		case 0:
			box.Min.X = center - half
			box.Max.X = center + half
		case 1:
			box.Min.Y = center - half
			box.Max.Y = center + half
		case 2:
			box.Min.Z = center - half
			box.Max.Z = center + half
		}
	}
	return box
}
