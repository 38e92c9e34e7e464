package shader

import (
	"math"
	"testing"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

func newGlass() *Dielectric {
	mat := scene.NewMaterial("glass", scene.KindDielectric)
	mat.Properties.SetFloat("refractiveIndex", 1.5)
	return NewDielectric(mat)
}

func TestDielectric_RefractionAtNormalIncidence(t *testing.T) {
	shader := newGlass()

	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// reflectProb is Schlick R0 = 0.04 here; a draw of 0.5 picks refraction
	scattered := shader.Shade(ray, core.Vec3{}, normal, fixedSampler{value: 0.5})

	if !vecsEqual(scattered.Ray.Direction.Normalize(), core.NewVec3(0, -1, 0), 1e-9) {
		t.Errorf("Expected straight-through refraction, got %v", scattered.Ray.Direction)
	}
	if scattered.PDF != 1.0 {
		t.Errorf("Expected delta pdf 1, got %f", scattered.PDF)
	}

	// Radiance scales by (ni/nt)² crossing into the denser medium
	expectedScale := (1.0 / 1.5) * (1.0 / 1.5)
	if math.Abs(scattered.Attenuation.X-expectedScale) > 1e-9 {
		t.Errorf("Expected attenuation %f, got %f", expectedScale, scattered.Attenuation.X)
	}
}

func TestDielectric_ReflectionBranch(t *testing.T) {
	shader := newGlass()

	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), incident)

	// A draw of 0 always lands in the reflection branch
	scattered := shader.Shade(ray, core.Vec3{}, normal, fixedSampler{value: 0})

	expected := core.NewVec3(1, 1, 0).Normalize()
	if !vecsEqual(scattered.Ray.Direction.Normalize(), expected, 1e-9) {
		t.Errorf("Expected mirror reflection %v, got %v", expected, scattered.Ray.Direction)
	}
	if !vecsEqual(scattered.Attenuation, core.NewVec3(1, 1, 1), 0) {
		t.Errorf("Expected unscaled attenuation on reflection, got %v", scattered.Attenuation)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	shader := newGlass()

	// Grazing exit: direction along the normal side, beyond the critical
	// angle, so refraction is impossible and every draw reflects
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(1, 0.2, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, -1, 0), incident)

	for _, draw := range []float64{0, 0.5, 0.999} {
		scattered := shader.Shade(ray, core.Vec3{}, normal, fixedSampler{value: draw})

		expected := reflect(incident, normal).Normalize()
		if !vecsEqual(scattered.Ray.Direction.Normalize(), expected, 1e-9) {
			t.Errorf("Draw %f: expected forced reflection %v, got %v",
				draw, expected, scattered.Ray.Direction)
		}
	}
}

func TestDielectric_DirectLightingDeltaLobes(t *testing.T) {
	shader := newGlass()

	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	light := overheadLight(core.NewVec3(4, 4, 4))

	// Light exactly along the reflection direction contributes
	mirror := core.NewVec3(1, 1, 0).Normalize()
	aligned := shader.EvaluateDirectLighting(ray, core.Vec3{}, normal, light, mirror, 2.0)
	if aligned == (core.Vec3{}) {
		t.Error("Expected contribution along the reflection lobe")
	}

	// Any direction off both lobes contributes nothing
	off := shader.EvaluateDirectLighting(ray, core.Vec3{}, normal, light,
		core.NewVec3(0, 1, 0), 2.0)
	if off != (core.Vec3{}) {
		t.Errorf("Expected zero off the delta lobes, got %v", off)
	}
}

func TestDielectric_BRDFDeltaLobes(t *testing.T) {
	shader := newGlass()
	normal := core.NewVec3(0, 1, 0)

	wo := core.NewVec3(-1, 1, 0).Normalize()
	mirror := reflect(wo.Negate(), normal).Normalize()

	if got := shader.BRDF(mirror, wo, normal); got == (core.Vec3{}) {
		t.Error("Expected non-zero reflectance along the mirror lobe")
	}
	if got := shader.BRDF(core.NewVec3(0, 1, 0), wo, normal); got != (core.Vec3{}) {
		t.Errorf("Expected zero off the lobes, got %v", got)
	}
}

func TestDielectric_DefaultIndex(t *testing.T) {
	shader := NewDielectric(scene.NewMaterial("bare", scene.KindDielectric))
	if shader.refractiveIndex != 1.5 {
		t.Errorf("Expected default index 1.5, got %f", shader.refractiveIndex)
	}
}
