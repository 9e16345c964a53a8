package country

import (
	"net/http"

	"golang.org/x/text/language"
)

// DefaultHeaders are the edge headers consulted when no custom list is set.
var DefaultHeaders = []string{"CF-IPCountry", "X-Country-Code"}

// maxAcceptLanguageLength caps the header before parsing it.
const maxAcceptLanguageLength = 4096

// Resolver picks a default country for a request.
type Resolver struct {
	headers  []string
	fallback string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHeaders replaces the list of edge headers that carry a country code.
// Empty names are ignored.
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		clean := make([]string, 0, len(headers))
		for _, h := range headers {
			if h != "" {
				clean = append(clean, h)
			}
		}
		r.headers = clean
	}
}

// WithFallback sets the country used when nothing else matches.
// Invalid codes are ignored.
func WithFallback(iso2 string) Option {
	return func(r *Resolver) {
		if code, err := Parse(iso2); err == nil {
			r.fallback = code
		}
	}
}

// NewResolver returns a Resolver with DefaultHeaders and no fallback.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fallback returns the configured fallback country.
func (r *Resolver) Fallback() string {
	return r.fallback
}

// Resolve returns the default country for req, or "" when nothing matches
// and there is no fallback.
func (r *Resolver) Resolve(req *http.Request) string {
	for _, h := range r.headers {
		if code, err := Parse(req.Header.Get(h)); err == nil {
			return code
		}
	}

	if code := fromAcceptLanguage(req.Header.Get("Accept-Language")); code != "" {
		return code
	}

	return r.fallback
}

// Middleware resolves the country once per request and stores it in the context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := WithContext(req.Context(), r.Resolve(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// fromAcceptLanguage returns the region of the highest-ranked tag that names
// one explicitly, e.g. "en-GB" gives "GB" while a bare "en" gives nothing.
func fromAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}

	for _, tag := range tags {
		region, conf := tag.Region()
		if conf != language.Exact {
			continue
		}
		if code, err := Parse(region.String()); err == nil {
			return code
		}
	}
	return ""
}
