package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonecheck/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestPhone(t *testing.T) {
	attr := logger.Phone("+44 7400 123456")
	require.Equal(t, "phone", attr.Key)
	assert.Equal(t, "********3456", attr.Value.String())
	assert.NotContains(t, attr.Value.String(), "7400")
}

func TestValidationAttrs(t *testing.T) {
	assertAttr(t, slog.String("outcome", "type_mismatch"), logger.Outcome("type_mismatch"))
	assertAttr(t, slog.String("type_filter", "mobile"), logger.TypeFilter("mobile"))
	assertAttr(t, slog.String("country", "GB"), logger.Country("GB"))
	assertAttr(t, slog.String("number_type", "Mobile"), logger.NumberType("Mobile"))
	assertAttr(t, slog.Bool("strict", true), logger.Strict(true))
	assertAttr(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assertAttr(t, slog.String("component", "phonecheck"), logger.Component("phonecheck"))
	assertAttr(t, slog.String("event", "validated"), logger.Event("validated"))

	assert.True(t, logger.Country("").Equal(slog.Attr{}))
	assert.True(t, logger.NumberType("").Equal(slog.Attr{}))
}

func assertAttr(t *testing.T, want, got slog.Attr) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %v, got %v", want, got)
}
