package phoneengine

import (
	"golang.org/x/text/language"
)

// Engine creates per-input instances sharing one set of defaults.
// It is safe for concurrent use.
type Engine struct {
	cfg config
}

// New returns an Engine. Without options it is non-strict, has no default
// country and displays country names in English.
func New(opts ...Option) *Engine {
	cfg := config{lang: language.English}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

// StrictMode reports the engine-wide strict default.
func (e *Engine) StrictMode() bool {
	return e.cfg.strict
}

// DefaultCountry returns the engine-wide default country.
func (e *Engine) DefaultCountry() string {
	return e.cfg.defaultCountry
}

// Instance parses input with the engine defaults overridden by opts.
func (e *Engine) Instance(input string, opts ...Option) *Instance {
	cfg := e.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	return newInstance(input, cfg)
}
