package phonefilter

// Source is the read side of a phone-number engine instance bound to one
// input. Implementations are created and discarded by the caller.
type Source interface {
	IsValidNumber() bool
	ValidationError() ErrorCode
	SelectedCountryData() CountryData
	NumberType() NumberType
	Number(format Format) string
}

// Collect reads a Source into a RawClassification. Type and formats are read
// only for valid numbers, the error code only for invalid ones.
func Collect(src Source, rawInput string) RawClassification {
	country := src.SelectedCountryData()
	raw := RawClassification{
		IsValid:     src.IsValidNumber(),
		CountryCode: country.ISO2,
		CountryName: country.Name,
		RawInput:    rawInput,
	}

	if !raw.IsValid {
		raw.ErrorCode = src.ValidationError()
		return raw
	}

	raw.NumberType = src.NumberType()
	raw.NationalFormat = src.Number(FormatNational)
	raw.InternationalFormat = src.Number(FormatInternational)
	raw.E164Format = src.Number(FormatE164)
	return raw
}
