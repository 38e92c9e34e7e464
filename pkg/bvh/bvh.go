// Package bvh implements a bounding volume hierarchy over a scene's primitive
// buffers. Nodes live in a flat arena and reference each other by index, and
// leaves reference primitives by handle into the immutable scene buffers, so
// the tree is acyclic by construction and shares no geometry ownership with
// the scene.
package bvh

import (
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/geometry"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// primitiveKind discriminates the scene buffer a handle points into.
type primitiveKind uint8

const (
	kindTriangle primitiveKind = iota
	kindSphere
	kindPlane
)

// primitiveRef is a handle to one primitive in the scene buffers.
type primitiveRef struct {
	kind  primitiveKind
	index int32
}

// node is one arena slot. Leaves have primCount > 0 and reference a
// contiguous run of b.refs; internal nodes reference two children by arena
// index (-1 when a child is absent at a degenerate tree edge).
type node struct {
	bounds      core.AABB
	left, right int32
	primStart   int32
	primCount   int32
}

func (n node) isLeaf() bool {
	return n.primCount > 0
}

// BVH is the built hierarchy. It is immutable after Build and safe to share
// across any number of concurrent traversals.
type BVH struct {
	scene *scene.Scene
	nodes []node
	refs  []primitiveRef
	root  int32
}

// TraversalStats counts the work done by an instrumented traversal. Used by
// the info command and by pruning tests.
type TraversalStats struct {
	NodesVisited   int
	PrimitiveTests int
}

// Intersect returns the globally nearest hit along the ray within
// [tMin, tMax], or (nil, false) on a miss.
func (b *BVH) Intersect(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	return b.IntersectStats(ray, tMin, tMax, nil)
}

// IntersectStats is Intersect with optional work counting; stats may be nil.
func (b *BVH) IntersectStats(ray core.Ray, tMin, tMax float64, stats *TraversalStats) (*geometry.HitRecord, bool) {
	if b.root < 0 {
		return nil, false
	}
	return b.intersectNode(b.root, ray, tMin, tMax, stats)
}

func (b *BVH) intersectNode(idx int32, ray core.Ray, tMin, tMax float64, stats *TraversalStats) (*geometry.HitRecord, bool) {
	n := &b.nodes[idx]
	if stats != nil {
		stats.NodesVisited++
	}

	// Only internal nodes cull by their box. Leaves brute-force every owned
	// primitive: a plane's box is a finite proxy for infinite geometry, so a
	// leaf-level slab test would discard real plane hits beyond it.
	if n.isLeaf() {
		return b.intersectLeaf(n, ray, tMin, tMax, stats)
	}

	if !n.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Both children are tested with the caller's window; narrowing tMax by
	// the nearer child's result would prune more but is not required for
	// the nearest hit to win the comparison below.
	var leftHit, rightHit *geometry.HitRecord
	if n.left >= 0 {
		leftHit, _ = b.intersectNode(n.left, ray, tMin, tMax, stats)
	}
	if n.right >= 0 {
		rightHit, _ = b.intersectNode(n.right, ray, tMin, tMax, stats)
	}

	switch {
	case leftHit != nil && rightHit != nil:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case leftHit != nil:
		return leftHit, true
	case rightHit != nil:
		return rightHit, true
	default:
		return nil, false
	}
}

// intersectLeaf brute-force tests every referenced primitive, shrinking the
// valid window as closer hits are found.
func (b *BVH) intersectLeaf(n *node, ray core.Ray, tMin, tMax float64, stats *TraversalStats) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closest := tMax

	for _, ref := range b.refs[n.primStart : n.primStart+n.primCount] {
		if stats != nil {
			stats.PrimitiveTests++
		}

		var hit *geometry.HitRecord
		var ok bool
		switch ref.kind {
		case kindTriangle:
			hit, ok = b.scene.Triangles[ref.index].Hit(ray, tMin, closest)
		case kindSphere:
			hit, ok = b.scene.Spheres[ref.index].Hit(ray, tMin, closest)
		case kindPlane:
			hit, ok = b.scene.Planes[ref.index].Hit(ray, tMin, closest)
		}

		if ok && hit.T < closest {
			closest = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Bounds returns the bounding box of the whole hierarchy.
func (b *BVH) Bounds() core.AABB {
	if b.root < 0 {
		return core.NewEmptyAABB()
	}
	return b.nodes[b.root].bounds
}
