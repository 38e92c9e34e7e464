package core

import "math"

// Onb is an orthonormal basis built around a single normal vector. Samples
// generated in the canonical frame (z up) are mapped into world space with
// Local, so hemisphere samplers never need to know the surface orientation.
type Onb struct {
	U, V, W Vec3
}

// NewOnb builds an orthonormal basis whose W axis is the given normal.
func NewOnb(normal Vec3) Onb {
	w := normal.Normalize()

	// Pick a helper axis that is not parallel to the normal
	var helper Vec3
	if math.Abs(w.X) > 0.9 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	v := w.Cross(helper).Normalize()
	u := w.Cross(v)

	return Onb{U: u, V: v, W: w}
}

// Local transforms a vector from the canonical frame into world space.
func (o Onb) Local(v Vec3) Vec3 {
	return o.U.Multiply(v.X).Add(o.V.Multiply(v.Y)).Add(o.W.Multiply(v.Z))
}
