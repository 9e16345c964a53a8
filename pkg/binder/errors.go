package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrInvalidForm          = errors.New("binder: failed to parse form data")
	ErrInvalidQuery         = errors.New("binder: failed to parse query parameters")
	ErrInvalidJSON          = errors.New("binder: failed to parse JSON request body")

	// ErrBinderNotApplicable tells the caller to try the next binder, e.g. a
	// form binder on a GET request without a body.
	ErrBinderNotApplicable = errors.New("binder: not applicable to this request")
)
