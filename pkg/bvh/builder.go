package bvh

import (
	"sort"
	"time"

	"github.com/Cong-Fanghao/NKU-CG/log"
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

var logger = log.New("bvh")

// Past this many primitives a range is partitioned further instead of
// becoming a leaf.
const leafThreshold = 4

// buildPrimitive wraps one primitive handle with its precomputed bounds and
// centroid for the duration of the build.
type buildPrimitive struct {
	bounds   core.AABB
	centroid core.Vec3
	ref      primitiveRef
}

// Builder constructs a BVH over a scene's primitive buffers. The build runs
// single-threaded during scene setup; the resulting tree is read-only.
type Builder struct{}

// NewBuilder creates a BVH builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build wraps every primitive in the scene with its bounds and centroid and
// recursively partitions them into a depth-balanced binary tree.
func (bd *Builder) Build(sc *scene.Scene) *BVH {
	start := time.Now()

	prims := make([]buildPrimitive, 0, sc.PrimitiveCount())
	for i := range sc.Triangles {
		prims = append(prims, wrap(sc.Triangles[i].BoundingBox(), kindTriangle, i))
	}
	for i := range sc.Spheres {
		prims = append(prims, wrap(sc.Spheres[i].BoundingBox(), kindSphere, i))
	}
	for i := range sc.Planes {
		prims = append(prims, wrap(sc.Planes[i].BoundingBox(), kindPlane, i))
	}

	b := &BVH{
		scene: sc,
		nodes: make([]node, 0, 2*len(prims)),
		refs:  make([]primitiveRef, 0, len(prims)),
	}
	b.root = bd.buildRange(b, prims, 0, len(prims))

	logger.Debugf("built BVH over %d primitives: %d nodes in %s",
		len(prims), len(b.nodes), time.Since(start))
	return b
}

func wrap(bounds core.AABB, kind primitiveKind, index int) buildPrimitive {
	return buildPrimitive{
		bounds:   bounds,
		centroid: bounds.Center(),
		ref:      primitiveRef{kind: kind, index: int32(index)},
	}
}

// buildRange partitions prims[start:end] and returns the arena index of the
// subtree root, or -1 for an empty range.
func (bd *Builder) buildRange(b *BVH, prims []buildPrimitive, start, end int) int32 {
	count := end - start
	if count == 0 {
		return -1
	}

	if count <= leafThreshold {
		return bd.emitLeaf(b, prims[start:end])
	}

	// Split on the largest extent of the centroid bounds, not the full
	// primitive bounds. Ties prefer the later axis in x->y->z order.
	centroidBounds := core.NewEmptyAABB()
	for i := start; i < end; i++ {
		centroidBounds.ExpandPoint(prims[i].centroid)
	}
	extent := centroidBounds.Size()

	axis := 0
	if extent.X <= extent.Y {
		axis = 1
	}
	if extent.Axis(axis) <= extent.Z {
		axis = 2
	}

	sort.Slice(prims[start:end], func(i, j int) bool {
		return prims[start+i].centroid.Axis(axis) < prims[start+j].centroid.Axis(axis)
	})

	mid := start + count/2
	left := bd.buildRange(b, prims, start, mid)
	right := bd.buildRange(b, prims, mid, end)

	bounds := core.NewEmptyAABB()
	if left >= 0 {
		bounds.ExpandAABB(b.nodes[left].bounds)
	}
	if right >= 0 {
		bounds.ExpandAABB(b.nodes[right].bounds)
	}

	b.nodes = append(b.nodes, node{
		bounds: bounds,
		left:   left,
		right:  right,
	})
	return int32(len(b.nodes) - 1)
}

// emitLeaf appends the primitive handles to the ref arena, partitioned back
// into triangle/sphere/plane order, and creates a leaf whose bounds are the
// union of the individual primitive bounds.
func (bd *Builder) emitLeaf(b *BVH, prims []buildPrimitive) int32 {
	startRef := int32(len(b.refs))
	bounds := core.NewEmptyAABB()
	for _, kind := range [...]primitiveKind{kindTriangle, kindSphere, kindPlane} {
		for _, p := range prims {
			if p.ref.kind == kind {
				b.refs = append(b.refs, p.ref)
			}
		}
	}
	for _, p := range prims {
		bounds.ExpandAABB(p.bounds)
	}

	b.nodes = append(b.nodes, node{
		bounds:    bounds,
		left:      -1,
		right:     -1,
		primStart: startRef,
		primCount: int32(len(prims)),
	})
	return int32(len(b.nodes) - 1)
}
