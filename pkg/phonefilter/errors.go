package phonefilter

import "errors"

var (
	// ErrUnknownTypeFilter is returned when a type filter string is not one of
	// "any", "mobile" or "fixed_line".
	ErrUnknownTypeFilter = errors.New("unknown number type filter")
)
