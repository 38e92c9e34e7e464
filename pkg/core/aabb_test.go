package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_EmptyExpand(t *testing.T) {
	box := NewEmptyAABB()
	box.ExpandPoint(NewVec3(1, 2, 3))

	if !vecsEqual(box.Min, NewVec3(1, 2, 3), 0) || !vecsEqual(box.Max, NewVec3(1, 2, 3), 0) {
		t.Errorf("Expected first expansion to snap to the point, got min=%v max=%v", box.Min, box.Max)
	}
}

func TestAABB_ExpandIsMonotone(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	box := NewEmptyAABB()

	for i := 0; i < 100; i++ {
		prevMin, prevMax := box.Min, box.Max
		p := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		box.ExpandPoint(p)

		for axis := 0; axis < 3; axis++ {
			if box.Min.Axis(axis) > prevMin.Axis(axis) {
				t.Fatalf("Min grew on axis %d after expanding with %v", axis, p)
			}
			if box.Max.Axis(axis) < prevMax.Axis(axis) {
				t.Fatalf("Max shrank on axis %d after expanding with %v", axis, p)
			}
		}
		if p.X < box.Min.X || p.X > box.Max.X {
			t.Fatalf("Expanded box does not contain %v", p)
		}
	}
}

func TestAABB_ExpandAABB(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 0), NewVec3(0.5, 2, 3))
	a.ExpandAABB(b)

	if !vecsEqual(a.Min, NewVec3(-1, 0, 0), 0) || !vecsEqual(a.Max, NewVec3(1, 2, 3), 0) {
		t.Errorf("Expected union box, got min=%v max=%v", a.Min, a.Max)
	}
}

func TestAABB_SurfaceArea(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 4))
	expected := 2.0 * (2*3 + 2*4 + 3*4)
	if got := box.SurfaceArea(); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected surface area %f, got %f", expected, got)
	}

	// A degenerate (point) box still has zero, not negative, area
	point := NewAABB(NewVec3(1, 1, 1), NewVec3(1, 1, 1))
	if got := point.SurfaceArea(); got != 0 {
		t.Errorf("Expected zero surface area for point box, got %f", got)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"head-on hit", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"offset miss", NewRay(NewVec3(5, 5, 5), NewVec3(0, 0, -1)), false},
		{"diagonal hit", NewRay(NewVec3(3, 3, 3), NewVec3(-1, -1, -1)), true},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, 1000.0); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

// Rays parallel to a slab produce infinite reciprocals; the IEEE comparisons
// must accept rays whose origin lies between the parallel slabs and reject
// the rest without any zero-direction special case.
func TestAABB_HitParallelRay(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	inside := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))
	if !box.Hit(inside, 0.001, 1000.0) {
		t.Error("Expected hit for ray between the x and y slabs")
	}

	outside := NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1))
	if box.Hit(outside, 0.001, 1000.0) {
		t.Error("Expected miss for ray outside the x slab")
	}
}

func TestAABB_HitRespectsWindow(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	// Box spans t in [4, 6] along this ray
	if box.Hit(ray, 0.001, 3.0) {
		t.Error("Expected miss when the window ends before the box")
	}
	if !box.Hit(ray, 0.001, 5.0) {
		t.Error("Expected hit when the window overlaps the box")
	}
}
