package phoneengine

import (
	"errors"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/phonecheck/pkg/country"
	"github.com/dmitrymomot/phonecheck/pkg/phonefilter"
)

// Digit-count bounds of a national significant number.
const (
	minNumberDigits = 2
	maxNumberDigits = 17
)

// Instance is the engine's view of one input.
type Instance struct {
	cfg     config
	input   string
	number  *phonenumbers.PhoneNumber
	valid   bool
	errCode phonefilter.ErrorCode
	region  string
}

var _ phonefilter.Source = (*Instance)(nil)

func newInstance(input string, cfg config) *Instance {
	inst := &Instance{cfg: cfg, input: input}
	inst.parse()
	return inst
}

func (i *Instance) parse() {
	trimmed := strings.TrimSpace(i.input)
	if trimmed == "" {
		i.errCode = phonefilter.ErrorNotANumber
		return
	}
	if i.cfg.strict && !isDialable(trimmed) {
		i.errCode = phonefilter.ErrorNotANumber
		return
	}

	num, err := phonenumbers.Parse(trimmed, i.cfg.defaultCountry)
	if err != nil {
		i.errCode = parseErrorCode(err, trimmed)
		return
	}
	i.number = num
	i.region = regionOf(num)

	if !phonenumbers.IsValidNumber(num) {
		i.errCode = phonefilter.ErrorCode(phonenumbers.IsPossibleNumberWithReason(num))
		return
	}
	if i.cfg.onlyCountries != nil {
		if _, ok := i.cfg.onlyCountries[i.region]; !ok {
			i.errCode = phonefilter.ErrorInvalidCountryCode
			return
		}
	}
	i.valid = true
}

// IsValidNumber reports whether the input is a valid number in an allowed country.
func (i *Instance) IsValidNumber() bool {
	return i.valid
}

// ValidationError returns the reason the input was rejected.
// It returns ErrorIsPossible for numbers that are possible but not valid.
func (i *Instance) ValidationError() phonefilter.ErrorCode {
	if i.valid {
		return phonefilter.ErrorIsPossible
	}
	return i.errCode
}

// SelectedCountryData returns the country the number belongs to. Input
// without a country calling code falls back to the default country.
func (i *Instance) SelectedCountryData() phonefilter.CountryData {
	iso2 := i.region
	if iso2 == "" && !strings.HasPrefix(strings.TrimSpace(i.input), "+") {
		iso2 = i.cfg.defaultCountry
	}
	if iso2 == "" {
		return phonefilter.CountryData{}
	}
	return phonefilter.CountryData{
		ISO2: iso2,
		Name: country.Name(iso2, i.cfg.lang),
	}
}

// NumberType returns the engine classification of the number.
func (i *Instance) NumberType() phonefilter.NumberType {
	if i.number == nil {
		return phonefilter.Unknown
	}
	return phonefilter.NumberType(phonenumbers.GetNumberType(i.number))
}

// Number formats the parsed number. Unparsable input gives "".
func (i *Instance) Number(format phonefilter.Format) string {
	if i.number == nil {
		return ""
	}
	switch format {
	case phonefilter.FormatInternational:
		return phonenumbers.Format(i.number, phonenumbers.INTERNATIONAL)
	case phonefilter.FormatNational:
		return phonenumbers.Format(i.number, phonenumbers.NATIONAL)
	case phonefilter.FormatRFC3966:
		return phonenumbers.Format(i.number, phonenumbers.RFC3966)
	default:
		return phonenumbers.Format(i.number, phonenumbers.E164)
	}
}

// regionOf returns the ISO country of num. Numbers valid in no single region
// fall back to the main country of their calling code.
func regionOf(num *phonenumbers.PhoneNumber) string {
	if r := phonenumbers.GetRegionCodeForNumber(num); country.Valid(r) {
		return r
	}
	if r := phonenumbers.GetRegionCodeForCountryCode(int(num.GetCountryCode())); r != "ZZ" && country.Valid(r) {
		return r
	}
	return ""
}

func parseErrorCode(err error, input string) phonefilter.ErrorCode {
	if errors.Is(err, phonenumbers.ErrInvalidCountryCode) {
		return phonefilter.ErrorInvalidCountryCode
	}
	switch n := countDigits(input); {
	case n == 0:
		return phonefilter.ErrorNotANumber
	case n < minNumberDigits:
		return phonefilter.ErrorTooShort
	case n > maxNumberDigits:
		return phonefilter.ErrorTooLong
	default:
		return phonefilter.ErrorNotANumber
	}
}

// isDialable reports whether s holds only characters a person would dial:
// digits, a single leading plus and common separators.
func isDialable(s string) bool {
	digits := 0
	for idx, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+':
			if idx != 0 {
				return false
			}
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '/':
		default:
			return false
		}
	}
	return digits > 0
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
