package country_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/phonecheck/pkg/country"
)

func TestLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "en"},
		{"single tag", "de", "de"},
		{"ranked tags", "fr;q=0.5, de-AT;q=0.9", "de-AT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, country.Language(req, language.English).String())
		})
	}
}
