package oidn

/*
#include <stdlib.h>
#include <OpenImageDenoise/oidn.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Pixel formats for shared filter images.
type Format int

const (
	FormatFloat  Format = C.OIDN_FORMAT_FLOAT
	FormatFloat2 Format = C.OIDN_FORMAT_FLOAT2
	FormatFloat3 Format = C.OIDN_FORMAT_FLOAT3
	FormatFloat4 Format = C.OIDN_FORMAT_FLOAT4
)

// Number of float32 components per pixel for this format.
func (f Format) Components() int {
	switch f {
	case FormatFloat:
		return 1
	case FormatFloat2:
		return 2
	case FormatFloat3:
		return 3
	case FormatFloat4:
		return 4
	}
	return 0
}

// A filter instance bound to a device. Images attached to the filter are
// shared with the engine, so their backing arrays are pinned until the
// filter is released.
type Filter struct {
	Kind string

	device *Device
	handle C.OIDNFilter
	pinner runtime.Pinner
}

// Create a filter of the given kind (e.g. "RT" or "RTLightmap").
func (d *Device) NewFilter(kind string) (*Filter, error) {
	cKind := C.CString(kind)
	defer C.free(unsafe.Pointer(cKind))

	handle := C.oidnNewFilter(d.handle, cKind)
	if err := d.Err(); err != nil {
		if handle != nil {
			C.oidnReleaseFilter(handle)
		}
		return nil, err
	}
	if handle == nil {
		return nil, fmt.Errorf("oidn: could not create filter %q", kind)
	}

	return &Filter{
		Kind:   kind,
		device: d,
		handle: handle,
	}, nil
}

// Attach a host buffer as a named filter image using tightly packed pixels.
func (f *Filter) SetSharedImage(name string, buf []float32, format Format, width, height int) error {
	if expLen := width * height * format.Components(); expLen == 0 || len(buf) != expLen {
		return fmt.Errorf("oidn filter (%s): image %q expected %d values for a %dx%d image; got %d", f.Kind, name, expLen, width, height, len(buf))
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	f.pinner.Pin(&buf[0])
	C.oidnSetSharedFilterImage(
		f.handle,
		cName,
		unsafe.Pointer(&buf[0]),
		C.OIDNFormat(format),
		C.size_t(width),
		C.size_t(height),
		0, 0, 0,
	)

	return nil
}

// Set a boolean filter parameter.
func (f *Filter) SetBool(name string, value bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.oidnSetFilter1b(f.handle, cName, C.bool(value))
}

// Commit all filter parameter changes.
func (f *Filter) Commit() {
	C.oidnCommitFilter(f.handle)
}

// Run the filter synchronously. Errors are reported through the device.
func (f *Filter) Execute() error {
	C.oidnExecuteFilter(f.handle)
	return f.device.Err()
}

// Release the filter and unpin any attached images.
func (f *Filter) Release() {
	if f.handle != nil {
		C.oidnReleaseFilter(f.handle)
		f.handle = nil
	}
	f.pinner.Unpin()
}
