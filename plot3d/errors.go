package plot3d

import "errors"

// ErrUnsupportedFormat is returned by Export for an unknown file extension.
var ErrUnsupportedFormat = errors.New("plot3d: unsupported output format")

// InputError reports an input file that could not be opened or read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return "plot3d: input " + e.Path + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}
