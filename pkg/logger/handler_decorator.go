package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/phonecheck/pkg/sanitizer"
)

// ContextExtractor pulls one attribute out of a context.
// It reports false when the context carries nothing to add.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator prepares every record before the wrapped handler sees
// it: string attributes under the "phone" key are masked, and context
// extractors add request-scoped attributes the record does not carry yet.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	keys := make(map[string]struct{}, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		keys[a.Key] = struct{}{}
		out.AddAttrs(maskPhone(a))
		return true
	})

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		// explicit attributes win over context ones
		if _, dup := keys[attr.Key]; dup {
			continue
		}
		keys[attr.Key] = struct{}{}
		out.AddAttrs(attr)
	}
	return h.next.Handle(ctx, out)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = maskPhone(a)
	}
	return &LogHandlerDecorator{next: h.next.WithAttrs(masked), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}

func maskPhone(a slog.Attr) slog.Attr {
	if a.Key != phoneKey || a.Value.Kind() != slog.KindString {
		return a
	}
	return slog.String(phoneKey, sanitizer.MaskPhone(a.Value.String()))
}
