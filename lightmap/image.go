// Package lightmap defines the in-memory representation of a baked HDR
// lightmap and the helpers for moving between interleaved RGBA storage and
// the separate color/alpha planes consumed by the denoiser.
package lightmap

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
)

// Channels per pixel in an interleaved image buffer (R, G, B, A).
const NumChannels = 4

var (
	ErrInvalidDimensions = errors.New("lightmap: image dimensions must be positive")
)

// A linear float RGBA image. Pixels are stored row-major with the channels
// of each pixel interleaved in R, G, B, A order.
type Image struct {
	Width  int
	Height int

	Pixels []float32
}

// Allocate a zeroed image with the given dimensions.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]float32, width*height*NumChannels),
	}
}

// Check that the image dimensions are positive and match the pixel buffer length.
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return ErrInvalidDimensions
	}

	if expLen := img.Width * img.Height * NumChannels; len(img.Pixels) != expLen {
		return fmt.Errorf("lightmap: expected %d values for a %dx%d image; got %d", expLen, img.Width, img.Height, len(img.Pixels))
	}

	return nil
}

// Get the RGBA value of the pixel at (x, y).
func (img *Image) At(x, y int) f32.Vec4 {
	offset := (y*img.Width + x) * NumChannels
	return f32.Vec4{
		img.Pixels[offset],
		img.Pixels[offset+1],
		img.Pixels[offset+2],
		img.Pixels[offset+3],
	}
}

// Set the RGBA value of the pixel at (x, y).
func (img *Image) Set(x, y int, v f32.Vec4) {
	offset := (y*img.Width + x) * NumChannels
	copy(img.Pixels[offset:offset+NumChannels], v[:])
}
