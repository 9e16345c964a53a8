package sanitizer

import "strings"

// PhoneInput cleans a phone number typed into a form: control characters are
// dropped, whitespace is collapsed and the result is trimmed. Letters are
// kept since vanity numbers are valid input.
var PhoneInput = Compose(
	RemoveControlChars,
	SingleLine,
)

// MaskPhone replaces every digit but the last four with "*" and drops
// everything else, so "+1 (201) 555-0123" becomes "*******0123".
// Masked values are returned unchanged.
func MaskPhone(phone string) string {
	if isMasked(phone) {
		return phone
	}
	digits := KeepDigits(phone)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// isMasked matches MaskPhone output: stars followed by at most four digits.
func isMasked(s string) bool {
	tail := strings.TrimLeft(s, "*")
	if len(tail) == len(s) || len(tail) > 4 {
		return false
	}
	return KeepDigits(tail) == tail
}
