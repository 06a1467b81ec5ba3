package cmd

import (
	"time"

	"github.com/nezticle/qlmdenoiser/batch"
	"github.com/nezticle/qlmdenoiser/codec"
	"github.com/nezticle/qlmdenoiser/denoise"
	"github.com/nezticle/qlmdenoiser/pipeline"
	"github.com/urfave/cli"
)

// Denoise every image and manifest given on the command line, stopping at
// the first failure.
func Denoise(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return cli.ShowAppHelp(ctx)
	}

	engineOpts, pipelineOpts, err := buildOptions(ctx)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError("", 1)
	}

	engine, err := denoise.New(engineOpts)
	if err != nil {
		logger.Errorf("could not initialize denoiser: %v", err)
		return cli.NewExitError("", 1)
	}
	defer engine.Close()

	p, err := pipeline.New(codec.OIIO{}, engine, pipelineOpts)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError("", 1)
	}
	defer func() {
		if closeErr := p.Close(); closeErr != nil {
			logger.Warningf("could not clean up temp dir: %v", closeErr)
		}
	}()

	driver := batch.New(p)
	start := time.Now()
	err = driver.Run(ctx.Args())

	if ctx.Bool("stats") {
		displayRunStats(driver.Stats(), time.Since(start))
	}

	if err != nil {
		logger.Error(err)
		if pipeline.KindOf(err) == pipeline.RenameError {
			logger.Error("the original file may be missing; see the message above for the location of the denoised result")
		}
		return cli.NewExitError("", 1)
	}

	return nil
}
