// Package denoise adapts the OIDN engine to the lightmap pipeline: it owns
// a single long-lived device and runs one short-lived filter per image.
package denoise

import (
	"fmt"
	"sync"
	"time"

	"github.com/nezticle/qlmdenoiser/denoise/oidn"
	"github.com/nezticle/qlmdenoiser/log"
)

var logger = log.New("denoise")

// Denoises RGB planes using a single committed engine device.
type Engine struct {
	opts Options

	// Serializes filter execution; a device must not run two filters at once.
	mu     sync.Mutex
	device *oidn.Device
}

// Create and commit an engine device.
func New(opts Options) (*Engine, error) {
	if opts.Filter == "" {
		opts.Filter = DefaultFilter
	}

	device, err := oidn.NewDevice(opts.DeviceType)
	if err != nil {
		return nil, err
	}

	if opts.NumThreads > 0 {
		device.SetInt("numThreads", opts.NumThreads)
	}
	if opts.SetAffinity {
		device.SetBool("setAffinity", true)
	}

	if err = device.Commit(); err != nil {
		device.Close()
		return nil, fmt.Errorf("denoise: could not initialize %s device: %w", opts.DeviceType, err)
	}

	logger.Infof("initialized %s device (filter: %s, threads: %d)", opts.DeviceType, opts.Filter, opts.NumThreads)
	return &Engine{
		opts:   opts,
		device: device,
	}, nil
}

// Release the engine device. No Denoise calls may be in flight.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.device != nil {
		e.device.Close()
		e.device = nil
	}
}

// Denoise a tightly packed RGB plane and return the result in a newly
// allocated buffer of the same size. The input buffer is not modified.
func (e *Engine) Denoise(color []float32, width, height int) ([]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.device == nil {
		return nil, ErrEngineClosed
	}

	start := time.Now()
	filter, err := e.device.NewFilter(e.opts.Filter)
	if err != nil {
		return nil, err
	}
	defer filter.Release()

	output := make([]float32, len(color))
	if err = filter.SetSharedImage("color", color, oidn.FormatFloat3, width, height); err != nil {
		return nil, err
	}
	if err = filter.SetSharedImage("output", output, oidn.FormatFloat3, width, height); err != nil {
		return nil, err
	}
	filter.SetBool("hdr", true)
	filter.Commit()

	if err = filter.Execute(); err != nil {
		return nil, err
	}

	logger.Debugf("filter %s processed %dx%d pixels in %s", e.opts.Filter, width, height, time.Since(start))
	return output, nil
}
