package core

import "math"

// AABB is an axis-aligned bounding box. The zero value of interest is the
// empty box from NewEmptyAABB, whose inverted infinite bounds make the first
// expansion snap to the expanded point. Boxes only ever grow: Expand* never
// shrinks Min or Max.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a box from explicit corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewEmptyAABB creates an empty box (Min = +inf, Max = -inf)
func NewEmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// ExpandPoint grows the box to contain the given point
func (a *AABB) ExpandPoint(p Vec3) {
	a.Min.X = math.Min(a.Min.X, p.X)
	a.Min.Y = math.Min(a.Min.Y, p.Y)
	a.Min.Z = math.Min(a.Min.Z, p.Z)

	a.Max.X = math.Max(a.Max.X, p.X)
	a.Max.Y = math.Max(a.Max.Y, p.Y)
	a.Max.Z = math.Max(a.Max.Z, p.Z)
}

// ExpandAABB grows the box to contain another box
func (a *AABB) ExpandAABB(other AABB) {
	a.ExpandPoint(other.Min)
	a.ExpandPoint(other.Max)
}

// Center returns the center point of the box
func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (a AABB) Size() Vec3 {
	return a.Max.Subtract(a.Min)
}

// SurfaceArea returns the total surface area of the box
func (a AABB) SurfaceArea() float64 {
	d := a.Size()
	return 2.0 * (d.X*d.Y + d.X*d.Z + d.Y*d.Z)
}

// Hit tests the ray against the box with the slab method, clipped to
// [tMin, tMax]. A zero direction component produces an infinite reciprocal;
// IEEE comparisons against +-inf then accept or reject the slab correctly
// with no special case (covered by TestAABB_HitParallelRay).
func (a AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (a.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (a.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}
	return true
}
