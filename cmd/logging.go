package cmd

import (
	"github.com/urfave/cli"

	"github.com/Cong-Fanghao/NKU-CG/log"
)

var logger = log.New("nkucg")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
