package country

import "errors"

// ErrInvalidCountry is returned when a value is not an ISO 3166-1 alpha-2 country code.
var ErrInvalidCountry = errors.New("invalid country code")
