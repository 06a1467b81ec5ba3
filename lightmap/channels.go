package lightmap

// Split an interleaved RGBA buffer into a tightly packed RGB plane and a
// separate alpha plane. The caller must ensure that rgba holds exactly
// width*height*4 values.
func Split(rgba []float32, width, height int) (color, alpha []float32) {
	numPixels := width * height
	color = make([]float32, numPixels*3)
	alpha = make([]float32, numPixels)

	rOffset, wOffset := 0, 0
	for i := 0; i < numPixels; i++ {
		color[wOffset] = rgba[rOffset]
		color[wOffset+1] = rgba[rOffset+1]
		color[wOffset+2] = rgba[rOffset+2]
		alpha[i] = rgba[rOffset+3]

		rOffset += 4
		wOffset += 3
	}

	return color, alpha
}

// Combine an RGB plane and an alpha plane back into an interleaved RGBA
// buffer. This is the inverse of Split.
func Combine(color, alpha []float32, width, height int) []float32 {
	numPixels := width * height
	rgba := make([]float32, numPixels*4)

	rOffset, wOffset := 0, 0
	for i := 0; i < numPixels; i++ {
		rgba[wOffset] = color[rOffset]
		rgba[wOffset+1] = color[rOffset+1]
		rgba[wOffset+2] = color[rOffset+2]
		rgba[wOffset+3] = alpha[i]

		rOffset += 3
		wOffset += 4
	}

	return rgba
}
