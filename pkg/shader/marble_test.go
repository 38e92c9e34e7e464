package shader

import (
	"math"
	"testing"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

func TestMarble_ShadeIsDiffuse(t *testing.T) {
	shader := NewMarble(scene.NewMaterial("marble", scene.KindMarble))

	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	sampler := newSampler()

	for i := 0; i < 100; i++ {
		scattered := shader.Shade(ray, core.NewVec3(0.2, 0, 0.3), normal, sampler)

		if scattered.Ray.Direction.Dot(normal) < 0 {
			t.Fatalf("Scattered direction below the surface: %v", scattered.Ray.Direction)
		}
		if math.Abs(scattered.PDF-1.0/(2.0*math.Pi)) > 1e-12 {
			t.Fatalf("Expected pdf 1/(2π), got %f", scattered.PDF)
		}
	}
}

func TestMarble_PatternRegions(t *testing.T) {
	shader := NewMarble(scene.NewMaterial("marble", scene.KindMarble))
	normal := core.NewVec3(0, 1, 0)

	palette := []core.Vec3{
		core.NewVec3(0.95, 0.95, 0.95),
		core.NewVec3(0.4, 0.4, 0.6),
		core.NewVec3(0.2, 0.2, 0.3),
	}

	// The projected uv maps hit point (0,*,0) to uv (0.5,0.5), the center
	// of the display disc: the pattern must quantize to the palette.
	center := shader.pattern(core.NewVec3(0, 0, 0), normal)
	inPalette := false
	for _, c := range palette {
		if vecsEqual(center, c, 1e-12) {
			inPalette = true
		}
	}
	if !inPalette {
		t.Errorf("Expected a palette color inside the disc, got %v", center)
	}

	// uv distance 0.45 from the disc center lands in the black border ring
	border := shader.pattern(core.NewVec3(0.225, 0, 0), normal)
	if border != (core.Vec3{}) {
		t.Errorf("Expected black border, got %v", border)
	}

	// Far outside the disc the subtle background blend applies: strictly
	// between the dimmed palette extremes, not quantized
	outside := shader.pattern(core.NewVec3(5, 0, 5), normal)
	if outside == (core.Vec3{}) {
		t.Error("Expected non-black background outside the disc")
	}
	if outside.X < 0.4*0.8-1e-9 || outside.X > 0.95*0.8+1e-9 {
		t.Errorf("Background out of the dimmed palette range: %v", outside)
	}
}

func TestMarble_ProjectionFollowsNormal(t *testing.T) {
	shader := NewMarble(scene.NewMaterial("marble", scene.KindMarble))

	// The same world point projects differently depending on the dominant
	// normal axis
	point := core.NewVec3(0.3, 0.7, 0.1)
	fromY := shader.pattern(point, core.NewVec3(0, 1, 0))
	fromX := shader.pattern(point, core.NewVec3(1, 0, 0))

	if vecsEqual(fromY, fromX, 1e-12) {
		// Not an invariant violation by itself, but with these coordinates
		// the projected uvs differ enough that the colors should too
		t.Errorf("Expected distinct projections, both gave %v", fromY)
	}
}
