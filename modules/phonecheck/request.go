package phonecheck

import (
	"github.com/dmitrymomot/phonecheck/pkg/country"
	"github.com/dmitrymomot/phonecheck/pkg/phonefilter"
	"github.com/dmitrymomot/phonecheck/pkg/sanitizer"
	"github.com/dmitrymomot/phonecheck/pkg/validator"
)

// MaxPhoneLength bounds the phone field in characters.
const MaxPhoneLength = 64

// ValidateRequest is the form, query and JSON input of a check.
// Strict is nil when the client did not send it; the engine default applies.
type ValidateRequest struct {
	Phone   string `form:"phone" query:"phone" json:"phone"`
	Strict  *bool  `form:"strict" query:"strict" json:"strict,omitempty"`
	Type    string `form:"type" query:"type" json:"type,omitempty"`
	Country string `form:"country" query:"country" json:"country,omitempty"`
}

func (r ValidateRequest) normalize() ValidateRequest {
	r.Phone = sanitizer.PhoneInput(r.Phone)
	r.Type = sanitizer.TrimToLower(r.Type)
	if r.Type == "" {
		r.Type = phonefilter.FilterValueAny
	}
	r.Country = sanitizer.TrimToUpper(r.Country)
	if code, err := country.Parse(r.Country); err == nil {
		r.Country = code
	}
	return r
}

func (r ValidateRequest) validate() error {
	return validator.Apply(
		validator.MaxLen("phone", r.Phone, MaxPhoneLength),
		validator.InList("type", r.Type, phonefilter.FilterValues),
		validator.Optional(r.Country, validator.ValidCountry("country", r.Country)),
	)
}

// validateAPI additionally requires a phone number.
func (r ValidateRequest) validateAPI() error {
	return validator.Apply(
		validator.Required("phone", r.Phone),
		validator.MaxLen("phone", r.Phone, MaxPhoneLength),
		validator.InList("type", r.Type, phonefilter.FilterValues),
		validator.Optional(r.Country, validator.ValidCountry("country", r.Country)),
	)
}

// APIMeta is the "meta" member of a JSON check: the settings the number
// was checked with.
type APIMeta struct {
	Outcome        phonefilter.Outcome          `json:"outcome"`
	TypeFilter     phonefilter.NumberTypeFilter `json:"typeFilter"`
	Strict         bool                         `json:"strict"`
	DefaultCountry string                       `json:"defaultCountry"`
}
