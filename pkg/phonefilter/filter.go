package phonefilter

const defaultErrorMessage = "Invalid number"

var errorMessages = map[ErrorCode]string{
	ErrorInvalidCountryCode: "Invalid country code",
	ErrorTooShort:           "Number too short",
	ErrorTooLong:            "Number too long",
	ErrorInvalidLength:      "Invalid length",
}

var typeLabels = map[NumberType]string{
	FixedLine:         "Fixed Line",
	Mobile:            "Mobile",
	FixedLineOrMobile: "Fixed Line or Mobile",
	TollFree:          "Toll Free",
	PremiumRate:       "Premium Rate",
	SharedCost:        "Shared Cost",
	VoIP:              "VoIP",
	PersonalNumber:    "Personal Number",
	Pager:             "Pager",
	UAN:               "UAN",
	Voicemail:         "Voicemail",
	Unknown:           "Unknown",
}

// ErrorMessage returns the user-facing message for an engine error code.
// Codes without a dedicated message fall back to "Invalid number".
func ErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return defaultErrorMessage
}

// Label returns the display label of a number type, "Unknown" for codes
// outside the table.
func Label(t NumberType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return typeLabels[Unknown]
}

// Filter applies the type filter to a raw engine classification.
func Filter(raw RawClassification, typeFilter NumberTypeFilter) ValidationResult {
	res := ValidationResult{
		Number:      raw.RawInput,
		CountryCode: raw.CountryCode,
		CountryName: raw.CountryName,
	}

	if !raw.IsValid {
		res.ErrorMessage = ErrorMessage(raw.ErrorCode)
		return res
	}

	res.NationalNumber = raw.NationalFormat
	res.InternationalNumber = raw.InternationalFormat
	res.E164Number = raw.E164Format
	res.NumberType = Label(raw.NumberType)

	switch {
	case typeFilter == FilterMobile && !raw.NumberType.IsMobile():
		res.ErrorMessage = "Expected mobile number, got " + res.NumberType
	case typeFilter == FilterFixedLine && !raw.NumberType.IsFixedLine():
		res.ErrorMessage = "Expected fixed line number, got " + res.NumberType
	default:
		res.IsValid = true
	}

	return res
}
