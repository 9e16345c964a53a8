package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonecheck/pkg/config"
)

type phoneConfig struct {
	Country string   `env:"PHONECHECK_TEST_COUNTRY" envDefault:"US"`
	Only    []string `env:"PHONECHECK_TEST_ONLY" envSeparator:","`
	Strict  bool     `env:"PHONECHECK_TEST_STRICT"`
	Quoted  string   `env:"PHONECHECK_TEST_QUOTED"`
	Extra   string   `env:"PHONECHECK_TEST_EXTRA"`
}

type requiredConfig struct {
	Secret string `env:"PHONECHECK_TEST_REQUIRED,required"`
}

var testKeys = []string{
	"PHONECHECK_TEST_COUNTRY",
	"PHONECHECK_TEST_ONLY",
	"PHONECHECK_TEST_STRICT",
	"PHONECHECK_TEST_QUOTED",
	"PHONECHECK_TEST_EXTRA",
	"PHONECHECK_TEST_REQUIRED",
}

// unsetAll clears the test keys and restores them after the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range testKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	config.ResetCache()
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	var cfg phoneConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "US", cfg.Country)
	assert.Empty(t, cfg.Only)
	assert.False(t, cfg.Strict)
}

func TestLoad_Cached(t *testing.T) {
	unsetAll(t)
	t.Setenv("PHONECHECK_TEST_COUNTRY", "FR")

	var first phoneConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "FR", first.Country)

	t.Setenv("PHONECHECK_TEST_COUNTRY", "IT")

	var second phoneConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "FR", second.Country, "second load is served from cache")

	var reloaded phoneConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "IT", reloaded.Country)
}

func TestLoad_RequiredNotCachedOnFailure(t *testing.T) {
	unsetAll(t)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("PHONECHECK_TEST_REQUIRED", "s3cret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[phoneConfig](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.Reload[phoneConfig](nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	unsetAll(t)

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg phoneConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	unsetAll(t)

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg phoneConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "GB", cfg.Country, "earlier files win")
	assert.Equal(t, []string{"gb", "ie"}, cfg.Only)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Equal(t, "override_only", cfg.Extra)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	require.ErrorIs(t, err, config.ErrLoadingEnv)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}
