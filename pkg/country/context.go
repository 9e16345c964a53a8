package country

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores the resolved country code in ctx.
func WithContext(ctx context.Context, iso2 string) context.Context {
	return context.WithValue(ctx, contextKey{}, iso2)
}

// FromContext returns the country code stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	iso2, _ := ctx.Value(contextKey{}).(string)
	return iso2
}

// LoggerExtractor returns a logger context extractor adding the resolved country.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if iso2 := FromContext(ctx); iso2 != "" {
			return slog.String("default_country", iso2), true
		}
		return slog.Attr{}, false
	}
}
