package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/Cong-Fanghao/NKU-CG/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "nkucg"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame of a built-in scene",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "showcase",
					Usage: "scene name (see the info command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 8,
					Usage: "maximum path depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render goroutines (0 = all CPUs)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "info",
			Usage: "print scene and BVH statistics",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "showcase",
					Usage: "scene name",
				},
			},
			Action: cmd.SceneInfo,
		},
	}

	app.Run(os.Args)
}
