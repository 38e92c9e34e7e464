package renderer

import "time"

// RenderStats contains statistics about a finished frame
type RenderStats struct {
	Width           int           // Frame width in pixels
	Height          int           // Frame height in pixels
	SamplesPerPixel int           // Camera rays traced per pixel
	PrimaryRays     int64         // Total camera rays traced
	Workers         int           // Goroutines used
	Duration        time.Duration // Wall-clock render time
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Duration.Seconds()
}
