package phoneengine

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/phonecheck/pkg/country"
)

type config struct {
	strict         bool
	defaultCountry string
	onlyCountries  map[string]struct{}
	lang           language.Tag
}

// Option configures an Engine or a single Instance.
type Option func(*config)

// WithStrictMode toggles strict character checking.
func WithStrictMode(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithDefaultCountry sets the country national-format input is parsed against.
// Invalid codes clear the default, so such input reports an invalid country code.
func WithDefaultCountry(iso2 string) Option {
	return func(c *config) {
		code, err := country.Parse(iso2)
		if err != nil {
			c.defaultCountry = ""
			return
		}
		c.defaultCountry = code
	}
}

// WithOnlyCountries restricts valid numbers to the given countries.
// Invalid codes are skipped. An empty list lifts the restriction.
func WithOnlyCountries(iso2 ...string) Option {
	return func(c *config) {
		only := make(map[string]struct{}, len(iso2))
		for _, v := range iso2 {
			if code, err := country.Parse(v); err == nil {
				only[code] = struct{}{}
			}
		}
		if len(only) == 0 {
			only = nil
		}
		c.onlyCountries = only
	}
}

// WithLanguage sets the language country names are displayed in.
func WithLanguage(lang language.Tag) Option {
	return func(c *config) {
		c.lang = lang
	}
}
