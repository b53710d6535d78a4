package app

import "errors"

var (
	// ErrBoundaryUnavailable means the compositor could not be queried, so no
	// decision about the window is possible.
	ErrBoundaryUnavailable = errors.New("compositor unavailable")

	// ErrNoHandleDiscovered means a freshly launched opaque-handle window did
	// not show up in the client list. The launch itself still counts.
	ErrNoHandleDiscovered = errors.New("no window discovered after launch")
)
