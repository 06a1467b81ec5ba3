package cmd

import (
	"github.com/nezticle/qlmdenoiser/denoise"
	"github.com/urfave/cli"
)

// Application flags. Every flag can also be set through its environment variable.
var Flags = []cli.Flag{
	cli.StringFlag{
		Name:   "filter",
		Value:  denoise.DefaultFilter,
		Usage:  "denoising filter to apply",
		EnvVar: "QLMDENOISER_FILTER",
	},
	cli.StringFlag{
		Name:   "device",
		Value:  "cpu",
		Usage:  "denoising device type (default, cpu)",
		EnvVar: "QLMDENOISER_DEVICE",
	},
	cli.IntFlag{
		Name:   "threads",
		Value:  0,
		Usage:  "number of denoiser threads (0 = use all cores)",
		EnvVar: "QLMDENOISER_THREADS",
	},
	cli.BoolFlag{
		Name:   "affinity",
		Usage:  "pin denoiser threads to cores",
		EnvVar: "QLMDENOISER_AFFINITY",
	},
	cli.StringFlag{
		Name:   "replace",
		Value:  "atomic",
		Usage:  "how results replace the originals (atomic, remove-first)",
		EnvVar: "QLMDENOISER_REPLACE",
	},
	cli.StringFlag{
		Name:   "temp-dir",
		Usage:  "parent directory for temporary output (default: system temp dir)",
		EnvVar: "QLMDENOISER_TEMP_DIR",
	},
	cli.BoolFlag{
		Name:   "keep-temp",
		Usage:  "do not remove the temporary output directory on exit",
		EnvVar: "QLMDENOISER_KEEP_TEMP",
	},
	cli.BoolFlag{
		Name:  "stats",
		Usage: "print per-file timing statistics when done",
	},
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:   "log-level",
		Usage:  "explicit log level (debug, info, notice, warning, error)",
		EnvVar: "QLMDENOISER_LOG_LEVEL",
	},
}
