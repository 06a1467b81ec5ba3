package denoise

import (
	"testing"
)

func TestDenoiseConstantImage(t *testing.T) {
	engine := createTestEngine(t)
	defer engine.Close()

	const w, h = 16, 8
	color := make([]float32, w*h*3)
	for i := range color {
		color[i] = 4.0
	}

	out, err := engine.Denoise(color, w, h)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(color) {
		t.Fatalf("expected output len to be %d; got %d", len(color), len(out))
	}
	if &out[0] == &color[0] {
		t.Fatal("expected output buffer not to alias the input buffer")
	}
	for i := range color {
		if color[i] != 4.0 {
			t.Fatalf("expected input value at %d to be left untouched; got %f", i, color[i])
		}
	}
}

func TestDenoiseSequentialCalls(t *testing.T) {
	engine := createTestEngine(t)
	defer engine.Close()

	// Each call binds a new filter so images of different sizes can share a device.
	for _, dims := range [][2]int{{4, 4}, {7, 3}, {1, 1}} {
		color := make([]float32, dims[0]*dims[1]*3)
		out, err := engine.Denoise(color, dims[0], dims[1])
		if err != nil {
			t.Fatalf("[%dx%d] unexpected error: %v", dims[0], dims[1], err)
		}
		if len(out) != len(color) {
			t.Fatalf("[%dx%d] expected output len to be %d; got %d", dims[0], dims[1], len(color), len(out))
		}
	}
}

func TestDenoiseZeroOptions(t *testing.T) {
	engine, err := New(Options{})
	if err != nil {
		t.Fatalf("could not create denoise engine; check that OpenImageDenoise is installed: %v", err)
	}
	defer engine.Close()

	if engine.opts.Filter != DefaultFilter {
		t.Fatalf("expected filter to default to %q; got %q", DefaultFilter, engine.opts.Filter)
	}

	// RTLightmap only accepts HDR input so the filter must be committed with hdr set.
	const w, h = 4, 4
	color := make([]float32, w*h*3)
	for i := range color {
		color[i] = 8.0
	}
	out, err := engine.Denoise(color, w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v <= 1.0 {
			t.Fatalf("expected HDR value at %d to stay above 1.0; got %f", i, v)
		}
	}
}

func TestDenoiseUnknownFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.Filter = "NoSuchFilter"
	engine, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer engine.Close()

	if _, err = engine.Denoise(make([]float32, 3), 1, 1); err == nil {
		t.Fatal("expected to get an engine error for an unknown filter kind")
	}
}

func TestDenoiseAfterClose(t *testing.T) {
	engine := createTestEngine(t)
	engine.Close()
	engine.Close()

	if _, err := engine.Denoise(make([]float32, 3), 1, 1); err != ErrEngineClosed {
		t.Fatalf("expected to get %v; got %v", ErrEngineClosed, err)
	}
}

func createTestEngine(t *testing.T) *Engine {
	opts := DefaultOptions()
	opts.NumThreads = 1
	engine, err := New(opts)
	if err != nil {
		t.Fatalf("could not create denoise engine; check that OpenImageDenoise is installed: %v", err)
	}
	return engine
}
