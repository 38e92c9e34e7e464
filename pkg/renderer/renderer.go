package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Cong-Fanghao/NKU-CG/log"
	"github.com/Cong-Fanghao/NKU-CG/pkg/core"
	"github.com/Cong-Fanghao/NKU-CG/pkg/integrator"
)

var logger = log.New("renderer")

// Config contains frame rendering configuration
type Config struct {
	Width           int // Frame width in pixels
	Height          int // Frame height in pixels
	SamplesPerPixel int // Camera rays per pixel
	Workers         int // Goroutines; <= 0 means NumCPU
	Seed            int64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 64,
		Workers:         0,
		Seed:            42,
	}
}

// Renderer traces a full frame through the path tracer. Scanlines are
// distributed over a pool of worker goroutines; each worker owns its sampler,
// so the scene, BVH and shaders are only ever read concurrently.
type Renderer struct {
	tracer *integrator.PathTracer
	camera *Camera
	config Config
}

// New creates a renderer over a prepared path tracer and camera
func New(tracer *integrator.PathTracer, camera *Camera, config Config) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Renderer{
		tracer: tracer,
		camera: camera,
		config: config,
	}
}

// Render traces the frame and returns the gamma-corrected image with stats
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	cfg := r.config
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	logger.Debugf("rendering %dx%d frame, %d spp, %d workers",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.Workers)

	start := time.Now()
	rows := make(chan int, cfg.Height)
	for j := 0; j < cfg.Height; j++ {
		rows <- j
	}
	close(rows)

	var primaryRays int64
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(cfg.Seed + int64(workerID))))
			var rays int64
			for j := range rows {
				r.renderRow(img, j, sampler)
				rays += int64(cfg.Width * cfg.SamplesPerPixel)
			}
			atomic.AddInt64(&primaryRays, rays)
		}(w)
	}
	wg.Wait()

	stats := RenderStats{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		PrimaryRays:     primaryRays,
		Workers:         cfg.Workers,
		Duration:        time.Since(start),
	}
	logger.Debugf("frame done in %s (%.0f rays/s)", stats.Duration, stats.RaysPerSecond())

	return img, stats
}

// renderRow traces every pixel of one scanline. Rows never overlap between
// workers, so writing into the shared image needs no lock.
func (r *Renderer) renderRow(img *image.RGBA, j int, sampler core.Sampler) {
	cfg := r.config
	for i := 0; i < cfg.Width; i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < cfg.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float64(i) + jitter.X) / float64(cfg.Width)
			t := (float64(j) + jitter.Y) / float64(cfg.Height)

			ray := r.camera.GetRay(s, t)
			colorAccum = colorAccum.Add(r.tracer.Trace(ray, sampler))
		}

		colorVec := colorAccum.Multiply(1.0 / float64(cfg.SamplesPerPixel))
		img.SetRGBA(i, cfg.Height-1-j, vec3ToColor(colorVec))
	}
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
