package main

import (
	"os"

	"github.com/nezticle/qlmdenoiser/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version, v",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "qlmdenoiser"
	app.Usage = "denoise baked HDR lightmaps in place using Open Image Denoise"
	app.Version = "0.1.0"
	app.ArgsUsage = "file1.exr [list.txt ...]"
	app.Description = `
Each argument is either an .exr lightmap or a .txt file listing one lightmap
path per line. Files are denoised in order and overwritten with the result;
processing stops at the first failure.`
	app.Flags = cmd.Flags
	app.Action = cmd.Denoise

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
