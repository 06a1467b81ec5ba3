// Package batch runs the file pipeline over image paths and manifests,
// stopping at the first failure.
package batch

import (
	"github.com/nezticle/qlmdenoiser/log"
	"github.com/nezticle/qlmdenoiser/pipeline"
)

var logger = log.New("batch")

// Denoises a single image file in place.
type FileDenoiser interface {
	DenoiseFile(path string) (*pipeline.FileStats, error)
}

// Dispatches image and manifest paths to a FileDenoiser.
type Driver struct {
	files FileDenoiser
	stats []pipeline.FileStats
}

// Create a new driver.
func New(files FileDenoiser) *Driver {
	return &Driver{files: files}
}

// Process each path in order, stopping at the first failure.
func (d *Driver) Run(paths []string) error {
	for _, path := range paths {
		if err := d.Process(path); err != nil {
			return err
		}
	}
	return nil
}

// Process a single image or manifest path. Manifest entries are processed
// in order and processing stops at the first failing entry.
func (d *Driver) Process(path string) error {
	if !IsManifest(path) {
		return d.denoise(path)
	}

	entries, err := ReadManifest(path)
	if err != nil {
		return err
	}
	logger.Infof("manifest %s lists %d file(s)", path, len(entries))

	for index, entry := range entries {
		logger.Debugf("[%d/%d] %s", index+1, len(entries), entry)
		if err = d.denoise(entry); err != nil {
			return err
		}
	}

	return nil
}

// Get the stats of every file processed successfully so far.
func (d *Driver) Stats() []pipeline.FileStats {
	return d.stats
}

func (d *Driver) denoise(path string) error {
	stats, err := d.files.DenoiseFile(path)
	if err != nil {
		return err
	}

	d.stats = append(d.stats, *stats)
	return nil
}
