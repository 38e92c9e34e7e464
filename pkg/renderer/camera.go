// Package renderer turns a scene into pixels: a perspective camera generates
// primary rays and a worker pool traces them in parallel.
package renderer

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// Camera generates primary rays for screen coordinates
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a perspective camera from the scene's camera settings and
// the output aspect ratio.
func NewCamera(settings scene.CameraSettings, width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)

	theta := settings.VerticalFOV * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := settings.LookFrom.Subtract(settings.LookAt).Normalize()
	u := settings.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := settings.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
