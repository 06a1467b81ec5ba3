// Package oidn provides thin Go bindings for the Intel Open Image Denoise
// C API. Only the subset needed to run single-shot filters on host memory
// is exposed.
package oidn

/*
#cgo LDFLAGS: -lOpenImageDenoise
#include <stdlib.h>
#include <OpenImageDenoise/oidn.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

type DeviceType uint8

// Supported device types.
const (
	DefaultDevice DeviceType = iota
	CpuDevice
)

func (dt DeviceType) String() string {
	switch dt {
	case DefaultDevice:
		return "default"
	case CpuDevice:
		return "cpu"
	}
	panic("oidn: unsupported device type")
}

// Parse a device type name as accepted by String.
func ParseDeviceType(name string) (DeviceType, error) {
	switch strings.ToLower(name) {
	case "default", "":
		return DefaultDevice, nil
	case "cpu":
		return CpuDevice, nil
	}
	return DefaultDevice, fmt.Errorf("oidn: unknown device type %q", name)
}

func (dt DeviceType) cType() C.OIDNDeviceType {
	if dt == CpuDevice {
		return C.OIDN_DEVICE_TYPE_CPU
	}
	return C.OIDN_DEVICE_TYPE_DEFAULT
}

// Wrapper around an OIDN device handle.
type Device struct {
	Type DeviceType

	handle C.OIDNDevice
}

// Create a new device of the given type. The device must be committed
// before any filters are created.
func NewDevice(dt DeviceType) (*Device, error) {
	handle := C.oidnNewDevice(dt.cType())
	if handle == nil {
		return nil, fmt.Errorf("oidn: could not create %s device", dt)
	}

	return &Device{
		Type:   dt,
		handle: handle,
	}, nil
}

// Set an integer device parameter. Must be called before Commit.
func (d *Device) SetInt(name string, value int) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.oidnSetDevice1i(d.handle, cName, C.int(value))
}

// Set a boolean device parameter. Must be called before Commit.
func (d *Device) SetBool(name string, value bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.oidnSetDevice1b(d.handle, cName, C.bool(value))
}

// Commit all device parameter changes. Returns any error reported by the
// device while initializing.
func (d *Device) Commit() error {
	C.oidnCommitDevice(d.handle)
	return d.Err()
}

// Query and clear the first error recorded by the device since the last
// call. Returns nil if no error occurred.
func (d *Device) Err() error {
	var msg *C.char
	code := ErrorCode(C.oidnGetDeviceError(d.handle, &msg))
	if code == ErrNone {
		return nil
	}

	return &Error{
		Code:    code,
		Message: C.GoString(msg),
	}
}

// Release the device. Any filters created by the device must have been
// released before calling this method.
func (d *Device) Close() {
	if d.handle != nil {
		C.oidnReleaseDevice(d.handle)
		d.handle = nil
	}
}
