package cmd

import (
	"github.com/nezticle/qlmdenoiser/log"
	"github.com/urfave/cli"
)

var logger = log.New("qlmdenoiser")

func setupLogging(ctx *cli.Context) {
	if name := ctx.String("log-level"); name != "" {
		level, ok := log.ParseLevel(name)
		if !ok {
			logger.Warningf("ignoring unknown log level %q", name)
		}
		log.SetLevel(level)
	}

	if ctx.Bool("verbose") {
		log.SetLevel(log.Info)
	}

	if ctx.Bool("debug") {
		log.SetLevel(log.Debug)
	}
}
