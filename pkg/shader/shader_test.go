package shader

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// fixedSampler returns the same value for every draw, making stochastic
// branch choices deterministic in tests.
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64   { return f.value }
func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.value, f.value) }
func (f fixedSampler) Get3D() core.Vec3 { return core.NewVec3(f.value, f.value, f.value) }

func newSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func vecsEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// overheadLight returns a unit-area light 2 units above the origin
func overheadLight(radiance core.Vec3) scene.AreaLight {
	return scene.NewAreaLight(
		core.NewVec3(-0.5, 2, -0.5),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		radiance)
}

func TestReflect(t *testing.T) {
	v := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)

	got := reflect(v, n)
	expected := core.NewVec3(1, 1, 0).Normalize()
	if !vecsEqual(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if math.Abs(got.Length()-1.0) > 1e-12 {
		t.Errorf("Reflection changed length: %f", got.Length())
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	v := core.NewVec3(0, -1, 0)
	n := core.NewVec3(0, 1, 0)

	refracted, ok := refract(v, n, 1.0/1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if !vecsEqual(refracted.Normalize(), core.NewVec3(0, -1, 0), 1e-9) {
		t.Errorf("Expected straight-through refraction, got %v", refracted)
	}
}

func TestRefract_SnellBend(t *testing.T) {
	// 45 degrees into glass: sinθt = sin(45°)/1.5
	v := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)

	refracted, ok := refract(v, n, 1.0/1.5)
	if !ok {
		t.Fatal("Expected refraction")
	}

	dir := refracted.Normalize()
	sinT := math.Hypot(dir.X, dir.Z)
	expected := math.Sin(math.Pi/4) / 1.5
	if math.Abs(sinT-expected) > 1e-9 {
		t.Errorf("Expected sinθt=%f, got %f", expected, sinT)
	}
	if dir.Y >= 0 {
		t.Errorf("Refracted direction should continue into the medium, got %v", dir)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Grazing exit from glass: beyond the critical angle the discriminant
	// goes negative
	v := core.NewVec3(1, 0.2, 0).Normalize()
	n := core.NewVec3(0, -1, 0)

	if _, ok := refract(v, n, 1.5); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestSchlick(t *testing.T) {
	// R0 at normal incidence for glass is ((1-1.5)/(1+1.5))² = 0.04
	if got := schlick(1.0, 1.5); math.Abs(got-0.04) > 1e-9 {
		t.Errorf("Expected R0=0.04, got %f", got)
	}

	// Grazing incidence approaches full reflection
	if got := schlick(0.0, 1.5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected grazing reflectance 1, got %f", got)
	}

	// Reflectance stays in [0,1] across incidence angles
	for cosine := 0.0; cosine <= 1.0; cosine += 0.05 {
		r := schlick(cosine, 1.5)
		if r < 0 || r > 1 {
			t.Errorf("Reflectance out of [0,1] at cosine %f: %f", cosine, r)
		}
	}
}

func TestLightSolidAnglePDF(t *testing.T) {
	light := overheadLight(core.NewVec3(1, 1, 1))

	// Straight below the light: d=2, cosθ=1, area=1 so pdf near 4
	pdf := lightSolidAnglePDF(light, core.NewVec3(0, 1, 0), 2.0)
	if math.Abs(pdf-4.0) > 1e-3 {
		t.Errorf("Expected pdf near 4, got %f", pdf)
	}
}
