// Package validator checks request input with small composable rules.
//
// Each rule captures the value it checks and the error it reports; Apply
// runs them all and returns every failure at once so a form can highlight
// all invalid fields in one round trip:
//
//	err := validator.Apply(
//		validator.Required("phone", req.Phone),
//		validator.MaxLen("phone", req.Phone, 64),
//		validator.InList("type", req.Type, phonefilter.FilterValues),
//		validator.Optional(req.Country, validator.ValidCountry("country", req.Country)),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// errs.Get("phone") -> []string{"field is required"}
//	}
//
// TranslationKey and TranslationValues carry enough information to localize
// messages later; Message is the English default.
package validator
