package pointview

import "errors"

var (
	// ErrNilWindow is returned by NewLoop when no window is supplied.
	ErrNilWindow = errors.New("pointview: window must not be nil")

	// ErrNilInput is returned by NewLoop when no input channel is supplied.
	ErrNilInput = errors.New("pointview: input channel must not be nil")

	// ErrTerminated is returned by Run when called on a loop that already
	// reached the Terminated state.
	ErrTerminated = errors.New("pointview: loop already terminated")
)
