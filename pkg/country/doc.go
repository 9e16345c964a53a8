// Package country resolves the default country for a phone number form and
// names countries for display.
//
// The default country is what a national-format number like "(201) 555-0123"
// is parsed against. Resolver picks it from the request without any network
// lookup, in this order:
//
//  1. an edge header set by the CDN or load balancer (CF-IPCountry by default)
//  2. the region of the first Accept-Language tag that names one explicitly
//  3. the configured fallback
//
// Unknown and Tor markers ("XX", "T1") are skipped.
//
// # Usage
//
//	resolver := country.NewResolver(country.WithFallback("US"))
//	r := chi.NewRouter()
//	r.Use(resolver.Middleware)
//
//	// later, in a handler
//	iso2 := country.FromContext(r.Context())
//	name := country.Name(iso2, language.English) // "United States"
package country
