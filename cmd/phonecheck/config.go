package main

import (
	"github.com/dmitrymomot/phonecheck/pkg/httpserver"
	"github.com/dmitrymomot/phonecheck/pkg/ratelimiter"
	"github.com/dmitrymomot/phonecheck/pkg/sanitizer"
)

type appConfig struct {
	Name      string `env:"APP_NAME" envDefault:"phonecheck"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// TrustedIPHeaders lists the headers the edge proxy overwrites with the
	// client address. Empty means the connection address is used.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
}

type phoneConfig struct {
	DefaultCountry string   `env:"PHONE_DEFAULT_COUNTRY" envDefault:"US"`
	StrictDefault  bool     `env:"PHONE_STRICT_DEFAULT" envDefault:"false"`
	OnlyCountries  []string `env:"PHONE_ONLY_COUNTRIES" envSeparator:","`
	CountryHeaders []string `env:"PHONE_COUNTRY_HEADERS" envSeparator:","`
	QRCodeSize     int      `env:"PHONE_QR_SIZE" envDefault:"192"`
	QRCacheSize    int      `env:"PHONE_QR_CACHE_SIZE" envDefault:"1024"`
}

type metricsConfig struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path      string `env:"METRICS_PATH" envDefault:"/metrics"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"phonecheck"`
}

// Config is the whole process configuration, read from the environment and
// an optional .env file.
type Config struct {
	App       appConfig
	HTTP      httpserver.Config
	Phone     phoneConfig
	Metrics   metricsConfig
	RateLimit ratelimiter.Config
}

// onlyCountries returns the cleaned, upper-cased allow list.
func (c phoneConfig) onlyCountries() []string {
	return sanitizer.MapStrings(sanitizer.CleanStringSlice(c.OnlyCountries), sanitizer.TrimToUpper)
}

func (c appConfig) trustedIPHeaders() []string {
	return sanitizer.CleanStringSlice(c.TrustedIPHeaders)
}

func (c phoneConfig) countryHeaders() []string {
	return sanitizer.CleanStringSlice(c.CountryHeaders)
}
