package phonefilter

import (
	"fmt"
	"strings"
)

// NumberTypeFilter narrows the kinds of numbers a user accepts.
type NumberTypeFilter int

const (
	FilterAny NumberTypeFilter = iota
	FilterMobile
	FilterFixedLine
)

// Form values for NumberTypeFilter.
const (
	FilterValueAny       = "any"
	FilterValueMobile    = "mobile"
	FilterValueFixedLine = "fixed_line"
)

// FilterValues lists the accepted form values in display order.
var FilterValues = []string{FilterValueAny, FilterValueMobile, FilterValueFixedLine}

// String returns the form value of the filter.
func (f NumberTypeFilter) String() string {
	switch f {
	case FilterMobile:
		return FilterValueMobile
	case FilterFixedLine:
		return FilterValueFixedLine
	default:
		return FilterValueAny
	}
}

// ParseTypeFilter converts a form value into a NumberTypeFilter.
// An empty string selects FilterAny.
func ParseTypeFilter(s string) (NumberTypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FilterValueAny:
		return FilterAny, nil
	case FilterValueMobile:
		return FilterMobile, nil
	case FilterValueFixedLine:
		return FilterFixedLine, nil
	default:
		return FilterAny, fmt.Errorf("%w: %q", ErrUnknownTypeFilter, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f NumberTypeFilter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *NumberTypeFilter) UnmarshalText(b []byte) error {
	v, err := ParseTypeFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// NumberType is the engine's classification of a valid number.
// Values match the engine's own type codes.
type NumberType int

const (
	FixedLine NumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VoIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	Unknown
)

// IsMobile reports whether the type can be reached as a mobile line.
func (t NumberType) IsMobile() bool {
	return t == Mobile || t == FixedLineOrMobile
}

// IsFixedLine reports whether the type can be reached as a fixed line.
func (t NumberType) IsFixedLine() bool {
	return t == FixedLine || t == FixedLineOrMobile
}

// String returns the display label of the type.
func (t NumberType) String() string {
	return Label(t)
}

// ErrorCode is the engine's reason for rejecting a number.
type ErrorCode int

const (
	ErrorIsPossible          ErrorCode = 0
	ErrorInvalidCountryCode  ErrorCode = 1
	ErrorTooShort            ErrorCode = 2
	ErrorTooLong             ErrorCode = 3
	ErrorIsPossibleLocalOnly ErrorCode = 4
	ErrorInvalidLength       ErrorCode = 5
	ErrorNotANumber          ErrorCode = -99
)

// Format selects one of the engine's formatted representations.
type Format int

const (
	FormatE164 Format = iota
	FormatInternational
	FormatNational
	FormatRFC3966
)

// CountryData describes the country the engine selected for a number.
type CountryData struct {
	ISO2 string `json:"iso2"`
	Name string `json:"name"`
}

// RawClassification is the unfiltered output of the engine for one input.
// NumberType and the formats are meaningful only when IsValid is true,
// ErrorCode only when it is false.
type RawClassification struct {
	IsValid             bool
	ErrorCode           ErrorCode
	NumberType          NumberType
	CountryCode         string
	CountryName         string
	NationalFormat      string
	InternationalFormat string
	E164Format          string
	RawInput            string
}

// ValidationResult is the final verdict for one validation request.
// ErrorMessage is set if and only if IsValid is false.
type ValidationResult struct {
	IsValid             bool   `json:"isValid"`
	Number              string `json:"number"`
	CountryCode         string `json:"countryCode"`
	CountryName         string `json:"countryName"`
	NationalNumber      string `json:"nationalNumber"`
	InternationalNumber string `json:"internationalNumber"`
	E164Number          string `json:"e164Number"`
	NumberType          string `json:"numberType"`
	ErrorMessage        string `json:"errorMessage,omitempty"`
}

// Outcome is the tier a ValidationResult belongs to.
type Outcome string

const (
	OutcomeValid        Outcome = "valid"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeTypeMismatch Outcome = "type_mismatch"
)

// Outcome derives the result tier. A rejected result that still carries a
// number type passed engine validation and was rejected by the type filter.
func (r ValidationResult) Outcome() Outcome {
	switch {
	case r.IsValid:
		return OutcomeValid
	case r.NumberType != "":
		return OutcomeTypeMismatch
	default:
		return OutcomeInvalid
	}
}
