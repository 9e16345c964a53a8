package country

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supported holds the regions the phone metadata covers.
var supported = phonenumbers.GetSupportedRegions()

// Normalize upper-cases and trims a country code without validating it.
func Normalize(iso2 string) string {
	return strings.ToUpper(strings.TrimSpace(iso2))
}

// Parse validates an ISO 3166-1 alpha-2 code and returns its canonical
// form, so aliases such as "UK" become "GB". Codes without phone metadata
// (retired or reserved ones like "YU" or "CP") are rejected.
func Parse(iso2 string) (string, error) {
	code := Normalize(iso2)
	if len(code) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, iso2)
	}
	r, err := language.ParseRegion(code)
	if err != nil || !r.IsCountry() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, iso2)
	}
	code = r.String()
	if !supported[code] {
		return "", fmt.Errorf("%w: %q has no numbering plan", ErrInvalidCountry, iso2)
	}
	return code, nil
}

// Valid reports whether iso2 is an ISO 3166-1 alpha-2 country code.
func Valid(iso2 string) bool {
	_, err := Parse(iso2)
	return err == nil
}

// Name returns the country name in the given language, falling back to
// English when there is no dictionary for lang. Unknown codes give "".
func Name(iso2 string, lang language.Tag) string {
	code, err := Parse(iso2)
	if err != nil {
		return ""
	}
	region := language.MustParseRegion(code)

	if namer := display.Regions(lang); namer != nil {
		if name := namer.Name(region); name != "" {
			return name
		}
	}
	return display.Regions(language.English).Name(region)
}
