package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/Cong-Fanghao/NKU-CG/pkg/bvh"
	"github.com/Cong-Fanghao/NKU-CG/pkg/integrator"
	"github.com/Cong-Fanghao/NKU-CG/pkg/renderer"
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
	"github.com/Cong-Fanghao/NKU-CG/pkg/shader"
)

// RenderFrame renders a still frame of the selected scene to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Build(ctx.String("scene"))
	if err != nil {
		return err
	}

	accel := bvh.NewBuilder().Build(sc)
	shaders := shader.BuildTable(sc)
	tracer := integrator.NewPathTracer(sc, accel, shaders, ctx.Int("depth"))

	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.SamplesPerPixel = ctx.Int("spp")
	config.Workers = ctx.Int("workers")

	camera := renderer.NewCamera(sc.Camera, config.Width, config.Height)
	img, stats := renderer.New(tracer, camera, config).Render()

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", outFile)

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Samples/px", "Primary rays", "Workers", "Rays/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
