// Package codec loads and saves linear float RGBA lightmaps using
// OpenImageIO. Any float format OIIO can read is accepted on load; saving
// always produces a 4 channel float image whose format is selected by OIIO
// from the file extension (OpenEXR for .exr).
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/achilleasa/openimageigo"
	"github.com/nezticle/qlmdenoiser/lightmap"
	"github.com/nezticle/qlmdenoiser/log"
	"golang.org/x/image/math/f32"
)

var (
	ErrMissingChannels = errors.New("codec: image must provide R, G, B and A channels")
	ErrUnsupportedData = errors.New("codec: unexpected pixel data type returned by image reader")
)

var logger = log.New("codec")

// The order in which channels are stored in a lightmap.Image.
var rgbaChannelNames = [lightmap.NumChannels]string{"R", "G", "B", "A"}

// An OpenImageIO backed image codec.
type OIIO struct{}

// Load an image and convert it to interleaved float RGBA.
func (OIIO) Load(path string) (*lightmap.Image, error) {
	input, err := oiio.OpenImageInput(path)
	if err != nil {
		return nil, fmt.Errorf("codec: could not open %s: %s", path, err.Error())
	}
	defer input.Close()

	spec := input.Spec()
	if spec.Depth() != 1 {
		return nil, fmt.Errorf("codec: unsupported depth %d while loading %s", spec.Depth(), path)
	}

	indices, err := selectChannels(path, spec.ChannelNames())
	if err != nil {
		return nil, err
	}

	imgData, err := input.ReadImageFormat(oiio.TypeFloat, nil)
	if err != nil {
		return nil, fmt.Errorf("codec: could not read data from %s: %s", path, err.Error())
	}

	data, ok := imgData.([]float32)
	if !ok {
		return nil, ErrUnsupportedData
	}

	img := toImage(data, spec.NumChannels(), indices, spec.Width(), spec.Height())

	logger.Debugf("loaded %dx%d image %s (%d channels)", img.Width, img.Height, path, spec.NumChannels())
	return img, img.Validate()
}

// Save an interleaved RGBA image. Existing files at path are overwritten.
func (OIIO) Save(path string, img *lightmap.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}

	output, err := oiio.CreateImageOutput(path)
	if err != nil {
		return fmt.Errorf("codec: could not create image output for %s: %s", path, err.Error())
	}

	spec := oiio.NewImageSpecSize(img.Width, img.Height, lightmap.NumChannels, oiio.TypeFloat)
	if err = output.Open(path, spec, oiio.OpenModeCreate); err != nil {
		output.Close()
		return fmt.Errorf("codec: could not open %s for writing: %s", path, err.Error())
	}

	if err = output.WriteImage(img.Pixels); err != nil {
		output.Close()
		return fmt.Errorf("codec: could not write data to %s: %s", path, err.Error())
	}

	if err = output.Close(); err != nil {
		return fmt.Errorf("codec: could not finalize %s: %s", path, err.Error())
	}

	logger.Debugf("saved %dx%d image %s", img.Width, img.Height, path)
	return nil
}

// Locate the R, G, B and A channels by name. Channel names are matched
// case-insensitively; EXR files typically list channels alphabetically so
// the on-disk order cannot be relied on.
func channelIndices(names []string) ([lightmap.NumChannels]int, error) {
	var indices [lightmap.NumChannels]int
	for c, want := range rgbaChannelNames {
		indices[c] = -1
		for idx, name := range names {
			if strings.EqualFold(name, want) {
				indices[c] = idx
				break
			}
		}

		if indices[c] == -1 {
			return indices, ErrMissingChannels
		}
	}

	return indices, nil
}

// Resolve the RGBA channel indices of the image at path. A missing channel
// error still matches ErrMissingChannels.
func selectChannels(path string, names []string) ([lightmap.NumChannels]int, error) {
	indices, err := channelIndices(names)
	if err != nil {
		return indices, fmt.Errorf("%w (file: %s; channels: %v)", err, path, names)
	}
	return indices, nil
}

// Gather the selected channels of each pixel into an RGBA image.
func toImage(data []float32, numChannels int, indices [lightmap.NumChannels]int, width, height int) *lightmap.Image {
	img := lightmap.New(width, height)

	rOffset := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, f32.Vec4{
				data[rOffset+indices[0]],
				data[rOffset+indices[1]],
				data[rOffset+indices[2]],
				data[rOffset+indices[3]],
			})
			rOffset += numChannels
		}
	}

	return img
}
