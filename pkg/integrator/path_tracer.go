// Package integrator implements the recursive light transport loop on top of
// the BVH and the shader table.
package integrator

import (
	"math"

	"github.com/Cong-Fanghao/NKU-CG/pkg/bvh"
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
	"github.com/Cong-Fanghao/NKU-CG/pkg/shader"
)

const (
	// rayEpsilon offsets secondary ray origins off the surface they left
	rayEpsilon = 0.001

	// shadowEpsilon keeps shadow rays from hitting the light surface itself
	shadowEpsilon = 0.001
)

// PathTracer computes radiance along camera rays by unidirectional path
// tracing: at each bounce it adds self-emission, next-event estimation
// toward every area light, and a recursive indirect term along the
// shader-sampled continuation ray.
type PathTracer struct {
	scene    *scene.Scene
	accel    *bvh.BVH
	shaders  []shader.Shader
	maxDepth int
}

// NewPathTracer creates a path tracer over a built BVH and resolved shader
// table. The shader slice must be indexed by material id.
func NewPathTracer(sc *scene.Scene, accel *bvh.BVH, shaders []shader.Shader, maxDepth int) *PathTracer {
	return &PathTracer{
		scene:    sc,
		accel:    accel,
		shaders:  shaders,
		maxDepth: maxDepth,
	}
}

// Trace returns the radiance arriving along the given ray.
func (pt *PathTracer) Trace(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.trace(ray, sampler, pt.maxDepth)
}

func (pt *PathTracer) trace(ray core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, found := pt.accel.Intersect(ray, rayEpsilon, math.Inf(1))

	// A ray that reaches an emitter before any surface sees its radiance.
	closest := math.Inf(1)
	if found {
		closest = hit.T
	}
	if radiance, hitLight := pt.hitLight(ray, closest); hitLight {
		return radiance
	}

	if !found {
		return pt.scene.Background
	}

	sh := pt.shaders[hit.MaterialID]
	scattered := sh.Shade(ray, hit.Point, hit.Normal, sampler)

	color := scattered.Emitted
	color = color.Add(pt.directLighting(ray, hit.Point, hit.Normal, sh, sampler))
	color = color.Add(pt.indirectLighting(scattered, hit.Normal, sampler, depth))

	return color
}

// hitLight returns the radiance of the nearest light struck before maxT
func (pt *PathTracer) hitLight(ray core.Ray, maxT float64) (core.Vec3, bool) {
	closest := maxT
	var radiance core.Vec3
	hitAny := false
	for _, light := range pt.scene.Lights {
		if t, ok := light.Hit(ray, rayEpsilon, closest); ok {
			closest = t
			radiance = light.Radiance
			hitAny = true
		}
	}
	return radiance, hitAny
}

// directLighting performs next-event estimation: one sampled point per area
// light, occlusion tested through the BVH, contribution evaluated by the
// surface's shader.
func (pt *PathTracer) directLighting(ray core.Ray, hitPoint, normal core.Vec3,
	sh shader.Shader, sampler core.Sampler) core.Vec3 {

	total := core.Vec3{}
	for _, light := range pt.scene.Lights {
		ls := light.Sample(hitPoint, sampler.Get2D())
		if ls.PDF <= 0 {
			continue
		}

		shadowRay := core.NewRay(hitPoint, ls.Direction)
		if _, blocked := pt.accel.Intersect(shadowRay, rayEpsilon, ls.Distance-shadowEpsilon); blocked {
			continue
		}

		total = total.Add(sh.EvaluateDirectLighting(ray, hitPoint, normal, light, ls.Direction, ls.Distance))
	}
	return total
}

// indirectLighting recurses along the shader's continuation ray. Delta events
// report PDF 1 with the transport terms folded into the attenuation, so only
// finite-density samples get the explicit cosθ/pdf factor.
func (pt *PathTracer) indirectLighting(scattered shader.Scattered, normal core.Vec3,
	sampler core.Sampler, depth int) core.Vec3 {

	if scattered.PDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.trace(scattered.Ray, sampler, depth-1)

	if scattered.PDF == 1.0 {
		return scattered.Attenuation.MultiplyVec(incoming)
	}

	cosine := math.Max(0, normal.Dot(scattered.Ray.Direction.Normalize()))
	return scattered.Attenuation.MultiplyVec(incoming).Multiply(cosine / scattered.PDF)
}
