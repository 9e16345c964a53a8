package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/phonecheck/pkg/country"
)

// Required fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MaxLen fails when value has more than max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// InList fails when value is not one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", joinValues(allowed)),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowed,
			},
		},
	}
}

// NoControlChars fails when value contains control characters.
func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsFunc(value, unicode.IsControl)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must not contain control characters",
			TranslationKey:    "validation.no_control_chars",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidCountry fails unless value is an ISO 3166-1 alpha-2 country code.
func ValidCountry(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return country.Valid(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a two-letter country code",
			TranslationKey:    "validation.country",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// Optional skips rule when value is empty.
func Optional(value string, rule Rule) Rule {
	check := rule.Check
	rule.Check = func() bool {
		return value == "" || check()
	}
	return rule
}

func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
