package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonecheck/pkg/environment"
	"github.com/dmitrymomot/phonecheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("debug is filtered at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test"))).Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("context extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(key{}).(string); ok {
					return slog.String("id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		log.InfoContext(context.WithValue(t.Context(), key{}, "abc"), "with")
		assert.Equal(t, "abc", decode(t, buf)["id"])

		buf.Reset()
		log.With(slog.String("k", "v")).WithGroup("g").InfoContext(t.Context(), "without")
		assert.NotContains(t, buf.String(), `"id"`)
		assert.Contains(t, buf.String(), `"k":"v"`)
	})
}

func TestNew_MasksPhoneAttrs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	log.Info("raw", slog.String("phone", "+1 (201) 555-0123"))
	assert.Equal(t, "*******0123", decode(t, buf)["phone"])

	buf.Reset()
	log.Info("helper", logger.Phone("+1 (201) 555-0123"))
	assert.Equal(t, "*******0123", decode(t, buf)["phone"])

	buf.Reset()
	log.With(slog.String("phone", "+44 7400 123456")).Info("static")
	assert.Equal(t, "********3456", decode(t, buf)["phone"])
	assert.NotContains(t, buf.String(), "7400")

	buf.Reset()
	log.Info("other kinds untouched", slog.Int("phone", 7))
	assert.InDelta(t, 7, decode(t, buf)["phone"], 0)
}

func TestNew_ExplicitAttrsWinOverExtractors(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
			return slog.String("request_id", "from-context"), true
		}),
	)

	log.InfoContext(t.Context(), "explicit", logger.RequestID("explicit-id"))
	assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
	assert.Equal(t, "explicit-id", decode(t, buf)["request_id"])

	buf.Reset()
	log.InfoContext(t.Context(), "implicit")
	assert.Equal(t, "from-context", decode(t, buf)["request_id"])
}

func TestNew_Pretty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatPretty),
		logger.WithAttr(slog.String("service", "phonecheck")),
	)
	log.Debug("hidden")
	log.Info("phone number checked", logger.Outcome("valid"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INF phone number checked")
	assert.Contains(t, out, "service=phonecheck")
	assert.Contains(t, out, "outcome=valid")
	assert.NotContains(t, out, "\x1b[", "no color codes outside a terminal")
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Development, "phonecheck"), logger.WithOutput(buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=phonecheck")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "phonecheck"), logger.WithOutput(buf))
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "phonecheck", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("explicit options win", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Development, "phonecheck"),
			logger.WithFormat(logger.FormatJSON),
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(buf),
		)
		log.Info("hidden")
		assert.Empty(t, buf.String())
		log.Warn("shown")
		assert.Equal(t, "shown", decode(t, buf)["msg"])
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"info+2", slog.LevelInfo + 2, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("TEXT")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}
