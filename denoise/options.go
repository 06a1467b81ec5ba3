package denoise

import "github.com/nezticle/qlmdenoiser/denoise/oidn"

// The filter kind used when Options.Filter is empty. RTLightmap is trained
// on HDR lightmap content.
const DefaultFilter = "RTLightmap"

type Options struct {
	// Engine device selection.
	DeviceType oidn.DeviceType

	// Number of worker threads; 0 lets the engine decide.
	NumThreads int

	// Pin engine worker threads to cores.
	SetAffinity bool

	// Filter kind to run for each image. Lightmaps are always filtered as
	// HDR content.
	Filter string
}

// Default options for denoising HDR lightmaps on the CPU.
func DefaultOptions() Options {
	return Options{
		DeviceType: oidn.CpuDevice,
		Filter:     DefaultFilter,
	}
}
