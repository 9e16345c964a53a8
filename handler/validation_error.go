package handler

import (
	"errors"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/phonecheck/pkg/validator"
)

// ValidationError maps field names to their error messages.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom converts validator failures found in err.
// It returns nil when err holds none.
func ValidationErrorFrom(err error) ValidationError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := NewValidationError()
	for _, e := range ve {
		out.Add(e.Field, e.Message)
	}
	return out
}

// Error lists the first message of each field, sorted by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, field+": "+msgs[0])
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
