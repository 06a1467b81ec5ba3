package lightmap

import (
	"math"
	"math/rand"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestSplit(t *testing.T) {
	rgba := []float32{
		1, 2, 3, 0.5,
		4, 5, 6, 0.25,
	}

	color, alpha := Split(rgba, 2, 1)

	expColor := []float32{1, 2, 3, 4, 5, 6}
	expAlpha := []float32{0.5, 0.25}

	if len(color) != len(expColor) {
		t.Fatalf("expected color plane len to be %d; got %d", len(expColor), len(color))
	}
	for i := range expColor {
		if color[i] != expColor[i] {
			t.Fatalf("expected color[%d] to be %f; got %f", i, expColor[i], color[i])
		}
	}

	if len(alpha) != len(expAlpha) {
		t.Fatalf("expected alpha plane len to be %d; got %d", len(expAlpha), len(alpha))
	}
	for i := range expAlpha {
		if alpha[i] != expAlpha[i] {
			t.Fatalf("expected alpha[%d] to be %f; got %f", i, expAlpha[i], alpha[i])
		}
	}
}

func TestSplitCombineRoundTrip(t *testing.T) {
	type spec struct {
		w, h int
	}
	specs := []spec{
		{1, 1},
		{2, 2},
		{3, 7},
		{64, 1},
		{1, 33},
	}

	rng := rand.New(rand.NewSource(1))
	for index, s := range specs {
		rgba := make([]float32, s.w*s.h*4)
		for i := range rgba {
			// HDR values well outside [0, 1] plus a few special values.
			rgba[i] = rng.Float32() * 1000
		}
		rgba[0] = float32(math.Inf(1))
		rgba[len(rgba)-1] = -0.0

		color, alpha := Split(rgba, s.w, s.h)
		out := Combine(color, alpha, s.w, s.h)

		if len(out) != len(rgba) {
			t.Fatalf("[spec %d] expected combined len to be %d; got %d", index, len(rgba), len(out))
		}
		for i := range rgba {
			if math.Float32bits(out[i]) != math.Float32bits(rgba[i]) {
				t.Fatalf("[spec %d] expected value at %d to be %f; got %f", index, i, rgba[i], out[i])
			}
		}
	}
}

func TestCombineDoesNotAliasInputs(t *testing.T) {
	color := []float32{1, 2, 3}
	alpha := []float32{4}

	out := Combine(color, alpha, 1, 1)
	out[0] = 100
	out[3] = 100

	if color[0] != 1 || alpha[0] != 4 {
		t.Fatal("expected Combine to allocate a new buffer")
	}
}

func TestImageValidate(t *testing.T) {
	if err := New(2, 3).Validate(); err != nil {
		t.Fatalf("expected a freshly allocated image to be valid; got %v", err)
	}

	if err := (&Image{Width: 0, Height: 2}).Validate(); err != ErrInvalidDimensions {
		t.Fatalf("expected to get %v; got %v", ErrInvalidDimensions, err)
	}

	img := &Image{Width: 2, Height: 2, Pixels: make([]float32, 15)}
	expError := "lightmap: expected 16 values for a 2x2 image; got 15"
	if err := img.Validate(); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestImagePixelAccess(t *testing.T) {
	img := New(3, 2)
	img.Set(2, 1, f32.Vec4{1, 2, 3, 4})

	if got := img.At(2, 1); got != (f32.Vec4{1, 2, 3, 4}) {
		t.Fatalf("expected pixel (2, 1) to be [1 2 3 4]; got %v", got)
	}

	// Last pixel occupies the final 4 slots of the buffer.
	if img.Pixels[len(img.Pixels)-1] != 4 {
		t.Fatalf("expected alpha of last pixel to be stored at the end of the buffer; got %v", img.Pixels)
	}

	if got := img.At(0, 0); got != (f32.Vec4{}) {
		t.Fatalf("expected untouched pixel to be zero; got %v", got)
	}
}
