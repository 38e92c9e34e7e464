package geometry

import (
	"math"
	"testing"

	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)

	tests := []struct {
		name           string
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "head-on near root",
			ray:            core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "from inside uses far root",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:      "offset miss",
			ray:       core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "pointing away",
			ray:       core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0.001, 1000.0)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !vecsEqual(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_HitWindowSkipsNearRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Near root at t=4 excluded; far root at t=6 should be found
	hit, isHit := sphere.Hit(ray, 4.5, 1000.0)
	if !isHit {
		t.Fatal("Expected far root hit")
	}
	if math.Abs(hit.T-6.0) > 1e-9 {
		t.Errorf("Expected t=6, got %f", hit.T)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, 0)
	box := sphere.BoundingBox()

	if !vecsEqual(box.Min, core.NewVec3(-1, 0, 1), 1e-12) {
		t.Errorf("Expected min (-1,0,1), got %v", box.Min)
	}
	if !vecsEqual(box.Max, core.NewVec3(3, 4, 5), 1e-12) {
		t.Errorf("Expected max (3,4,5), got %v", box.Max)
	}
}
