package handler

import "errors"

var (
	// ErrNilResponse is reported when a HandlerFunc returns nil.
	ErrNilResponse = errors.New("handler: nil response")
	// ErrNoContextFactory is the panic value of Wrap for a custom context
	// type without WithContextFactory.
	ErrNoContextFactory = errors.New("handler: custom context type requires WithContextFactory")
)
