package denoise

import "errors"

var (
	ErrEngineClosed = errors.New("denoise: engine has been closed")
)
