package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/phonecheck/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// A nil error gives an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

const phoneKey = "phone"

// Phone records a masked phone number under the key "phone".
// Only the last four digits survive.
func Phone(raw string) slog.Attr {
	return slog.String(phoneKey, sanitizer.MaskPhone(raw))
}

// Outcome records the validation tier (valid, invalid, type_mismatch).
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// TypeFilter records the requested number type filter.
func TypeFilter(filter string) slog.Attr {
	return slog.String("type_filter", filter)
}

// Country records an ISO 3166-1 alpha-2 code under the key "country".
func Country(iso2 string) slog.Attr {
	if iso2 == "" {
		return slog.Attr{}
	}
	return slog.String("country", iso2)
}

// NumberType records the engine's number type label.
func NumberType(label string) slog.Attr {
	if label == "" {
		return slog.Attr{}
	}
	return slog.String("number_type", label)
}

func Strict(strict bool) slog.Attr {
	return slog.Bool("strict", strict)
}
