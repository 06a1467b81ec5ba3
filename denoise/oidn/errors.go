package oidn

import "fmt"

type ErrorCode int

// Error codes reported by oidnGetDeviceError.
const (
	ErrNone ErrorCode = iota
	ErrUnknown
	ErrInvalidArgument
	ErrInvalidOperation
	ErrOutOfMemory
	ErrUnsupportedHardware
	ErrCancelled
)

// An error reported by the denoising engine.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("oidn: %s (error: %s; code %d)", e.Message, ErrorName(e.Code), e.Code)
}

// Return a textual description of an OIDN error code.
func ErrorName(code ErrorCode) string {
	switch code {
	case ErrNone:
		return "NONE"
	case ErrUnknown:
		return "UNKNOWN"
	case ErrInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrInvalidOperation:
		return "INVALID_OPERATION"
	case ErrOutOfMemory:
		return "OUT_OF_MEMORY"
	case ErrUnsupportedHardware:
		return "UNSUPPORTED_HARDWARE"
	case ErrCancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("unknown error code %d", code)
	}
}
