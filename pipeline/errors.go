package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch = errors.New("pipeline: denoised buffer does not match the input shape")
)

// The category of a pipeline failure.
type ErrorKind uint8

const (
	UnknownError ErrorKind = iota
	LoadError
	EngineError
	SaveError
	RemoveError
	RenameError
	ManifestError
)

func (k ErrorKind) String() string {
	switch k {
	case LoadError:
		return "load"
	case EngineError:
		return "engine"
	case SaveError:
		return "save"
	case RemoveError:
		return "remove"
	case RenameError:
		return "rename"
	case ManifestError:
		return "manifest"
	}
	return "unknown"
}

// A failure while processing a single file or manifest.
type Error struct {
	Kind ErrorKind

	// The file (or manifest) being processed.
	Path string

	// If set, the original file has been removed and the denoised result
	// only exists at this location.
	Stranded string

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("pipeline: %s error for %s: %v", e.Kind, e.Path, e.Err)
	if e.Stranded != "" {
		msg += fmt.Sprintf(" (original file was removed; denoised output left at %s)", e.Stranded)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Get the kind of a pipeline error anywhere in err's chain. Returns
// UnknownError if err does not wrap an *Error.
func KindOf(err error) ErrorKind {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	return UnknownError
}
