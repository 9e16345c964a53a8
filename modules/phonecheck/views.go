package phonecheck

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/phonecheck/pkg/phonefilter"
)

// Views renders the page and its fragments. Every field is required.
type Views struct {
	Page        func(PageParams) templ.Component
	Form        func(FormParams) templ.Component
	Result      func(ResultParams) templ.Component
	EmptyResult func() templ.Component
}

// PageParams contains data for rendering the full page.
type PageParams struct {
	Form FormParams
	// Result is nil until a number has been checked.
	Result *ResultParams
}

// FormParams contains data for rendering the form (id "phone-form").
type FormParams struct {
	Phone   string
	Strict  bool
	Type    string
	Country string
	// DefaultCountry is the country national-format input is read against
	// when Country is empty.
	DefaultCountry string
	TypeOptions    []TypeOption
}

type TypeOption struct {
	Value    string
	Label    string
	Selected bool
}

// ResultParams contains data for rendering the result panel (id "result").
type ResultParams struct {
	Result  phonefilter.ValidationResult
	Outcome phonefilter.Outcome
	Strict  bool
	Type    string
	// TelURI and QRCode are set for valid numbers only. QRCode is a PNG
	// data URI.
	TelURI string
	QRCode string
}

var typeLabels = map[string]string{
	phonefilter.FilterValueAny:       "Any",
	phonefilter.FilterValueMobile:    "Mobile",
	phonefilter.FilterValueFixedLine: "Fixed line",
}

func typeOptions(selected string) []TypeOption {
	opts := make([]TypeOption, 0, len(phonefilter.FilterValues))
	for _, v := range phonefilter.FilterValues {
		opts = append(opts, TypeOption{Value: v, Label: typeLabels[v], Selected: v == selected})
	}
	return opts
}
