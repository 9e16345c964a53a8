// Package metrics exposes Prometheus collectors for phone validations and
// HTTP traffic.
//
// A Metrics value owns its own registry, so tests and multiple servers in one
// process do not collide on the default registerer.
//
//	m := metrics.New("phonecheck")
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
//
//	m.ObserveValidation(result, typeFilter, strict)
package metrics
