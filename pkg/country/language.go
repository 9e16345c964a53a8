package country

import (
	"net/http"

	"golang.org/x/text/language"
)

// Language returns the highest-ranked Accept-Language tag of req, or
// fallback when the header is missing or malformed.
func Language(req *http.Request, fallback language.Tag) language.Tag {
	header := req.Header.Get("Accept-Language")
	if header == "" {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	return tags[0]
}
