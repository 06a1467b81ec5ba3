// Package pipeline denoises a single lightmap file in place: load, split
// off alpha, denoise the color plane, recombine, save to a temp file and
// replace the original.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nezticle/qlmdenoiser/lightmap"
	"github.com/nezticle/qlmdenoiser/log"
)

var logger = log.New("pipeline")

// Reads and writes lightmap images.
type Codec interface {
	Load(path string) (*lightmap.Image, error)
	Save(path string, img *lightmap.Image) error
}

// Denoises a tightly packed RGB plane, returning a new buffer of the same size.
type Denoiser interface {
	Denoise(color []float32, width, height int) ([]float32, error)
}

// Processes lightmap files one at a time.
type Pipeline struct {
	codec    Codec
	denoiser Denoiser
	opts     Options

	// Per-run directory holding denoised results until they replace the originals.
	tempDir string
}

// Create a pipeline and its per-run temp directory. Close must be called to
// clean up the temp directory.
func New(codec Codec, denoiser Denoiser, opts Options) (*Pipeline, error) {
	tempDir, err := os.MkdirTemp(opts.TempDir, "qlmdenoiser-*")
	if err != nil {
		return nil, fmt.Errorf("pipeline: could not create temp dir: %w", err)
	}
	logger.Debugf("using temp dir %s", tempDir)

	return &Pipeline{
		codec:    codec,
		denoiser: denoiser,
		opts:     opts,
		tempDir:  tempDir,
	}, nil
}

// Get the per-run temp directory.
func (p *Pipeline) TempDir() string {
	return p.tempDir
}

// Remove the per-run temp dir unless the pipeline was configured to keep it.
// A temp dir still holding stranded results is never removed.
func (p *Pipeline) Close() error {
	if p.opts.KeepTemp {
		logger.Noticef("keeping temp dir %s", p.tempDir)
		return nil
	}

	entries, err := os.ReadDir(p.tempDir)
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		logger.Warningf("temp dir %s is not empty; leaving it in place", p.tempDir)
		return nil
	}

	return os.Remove(p.tempDir)
}

// Denoise the image at path and replace it with the result.
func (p *Pipeline) DenoiseFile(path string) (*FileStats, error) {
	start := time.Now()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &Error{Kind: LoadError, Path: path, Err: err}
	}
	stats := &FileStats{Path: absPath}

	logger.Noticef("loading %s", absPath)
	stageStart := time.Now()
	img, err := p.codec.Load(absPath)
	if err == nil {
		err = img.Validate()
	}
	if err != nil {
		return nil, &Error{Kind: LoadError, Path: absPath, Err: err}
	}
	stats.Width, stats.Height = img.Width, img.Height
	stats.LoadTime = time.Since(stageStart)

	logger.Infof("denoising %dx%d image", img.Width, img.Height)
	stageStart = time.Now()
	color, alpha := lightmap.Split(img.Pixels, img.Width, img.Height)
	denoised, err := p.denoiser.Denoise(color, img.Width, img.Height)
	if err == nil && len(denoised) != len(color) {
		err = ErrShapeMismatch
	}
	if err != nil {
		return nil, &Error{Kind: EngineError, Path: absPath, Err: err}
	}
	stats.DenoiseTime = time.Since(stageStart)

	out := &lightmap.Image{
		Width:  img.Width,
		Height: img.Height,
		Pixels: lightmap.Combine(denoised, alpha, img.Width, img.Height),
	}

	tmpFile := filepath.Join(p.tempDir, filepath.Base(absPath))
	logger.Infof("saving result to %s", tmpFile)
	stageStart = time.Now()
	if err = p.codec.Save(tmpFile, out); err != nil {
		os.Remove(tmpFile)
		return nil, &Error{Kind: SaveError, Path: absPath, Err: err}
	}
	stats.SaveTime = time.Since(stageStart)

	stageStart = time.Now()
	if err = p.replace(tmpFile, absPath); err != nil {
		return nil, err
	}
	stats.ReplaceTime = time.Since(stageStart)
	stats.TotalTime = time.Since(start)

	logger.Noticef("done %s in %s", absPath, stats.TotalTime)
	return stats, nil
}
