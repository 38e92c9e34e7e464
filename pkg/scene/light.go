package scene

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
)

// AreaLight is a parallelogram emitter spanned by two edge vectors.
type AreaLight struct {
	Position core.Vec3 // Corner of the parallelogram
	U, V     core.Vec3 // Edge vectors
	Radiance core.Vec3 // Emitted radiance
}

// NewAreaLight creates a new area light
func NewAreaLight(position, u, v, radiance core.Vec3) AreaLight {
	return AreaLight{Position: position, U: u, V: v, Radiance: radiance}
}

// Area returns the surface area of the light
func (l AreaLight) Area() float64 {
	return l.U.Cross(l.V).Length()
}

// Normal returns the unit normal of the light surface
func (l AreaLight) Normal() core.Vec3 {
	return l.U.Cross(l.V).Normalize()
}

// Hit tests the ray against the light's parallelogram and returns the hit
// distance. Rays that strike an emitter see its radiance directly, so the
// transport loop checks lights alongside scene geometry.
func (l AreaLight) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	n := l.U.Cross(l.V)
	denominator := n.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := n.Dot(l.Position.Subtract(ray.Origin)) / denominator
	if t <= tMin || t >= tMax {
		return 0, false
	}

	// Express the hit point in the (U, V) edge basis and require both
	// coordinates inside [0, 1].
	p := ray.At(t).Subtract(l.Position)
	uu := l.U.Dot(l.U)
	vv := l.V.Dot(l.V)
	uv := l.U.Dot(l.V)
	det := uu*vv - uv*uv
	if det < 1e-12 {
		return 0, false
	}

	a := (p.Dot(l.U)*vv - p.Dot(l.V)*uv) / det
	b := (p.Dot(l.V)*uu - p.Dot(l.U)*uv) / det
	if a < 0 || a > 1 || b < 0 || b > 1 {
		return 0, false
	}

	return t, true
}

// LightSample is one sampled direction toward an area light, with the
// solid-angle density needed to unbias the estimate and to weigh it against
// BRDF sampling.
type LightSample struct {
	Point     core.Vec3 // Sampled point on the light surface
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance from the shading point to the light
	PDF       float64   // Solid-angle density of this sample (0 if edge-on)
}

// Sample picks a uniform point on the light surface and returns the direction,
// distance and solid-angle PDF as seen from the given shading point.
func (l AreaLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	samplePoint := l.Position.
		Add(l.U.Multiply(sample.X)).
		Add(l.V.Multiply(sample.Y))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-8 {
		return LightSample{Point: samplePoint}
	}
	direction := toLight.Multiply(1.0 / distance)

	// Convert the uniform area density 1/Area to solid angle:
	// pdf = distance² / (Area · |cosθ_light|)
	cosTheta := math.Abs(l.Normal().Dot(direction))
	if cosTheta < 1e-8 {
		return LightSample{Point: samplePoint, Direction: direction, Distance: distance}
	}

	return LightSample{
		Point:     samplePoint,
		Direction: direction,
		Distance:  distance,
		PDF:       distance * distance / (l.Area() * cosTheta),
	}
}
