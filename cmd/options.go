package cmd

import (
	"fmt"

	"github.com/nezticle/qlmdenoiser/denoise"
	"github.com/nezticle/qlmdenoiser/denoise/oidn"
	"github.com/nezticle/qlmdenoiser/pipeline"
	"github.com/urfave/cli"
)

// Map command line flags to engine and pipeline options.
func buildOptions(ctx *cli.Context) (denoise.Options, pipeline.Options, error) {
	engineOpts := denoise.DefaultOptions()
	pipelineOpts := pipeline.Options{
		TempDir:  ctx.String("temp-dir"),
		KeepTemp: ctx.Bool("keep-temp"),
	}

	deviceType, err := oidn.ParseDeviceType(ctx.String("device"))
	if err != nil {
		return engineOpts, pipelineOpts, err
	}
	engineOpts.DeviceType = deviceType

	if filter := ctx.String("filter"); filter != "" {
		engineOpts.Filter = filter
	}

	engineOpts.NumThreads = ctx.Int("threads")
	if engineOpts.NumThreads < 0 {
		return engineOpts, pipelineOpts, fmt.Errorf("invalid thread count %d", engineOpts.NumThreads)
	}
	engineOpts.SetAffinity = ctx.Bool("affinity")

	pipelineOpts.Replace, err = pipeline.ParseReplaceMode(ctx.String("replace"))
	if err != nil {
		return engineOpts, pipelineOpts, err
	}

	return engineOpts, pipelineOpts, nil
}
