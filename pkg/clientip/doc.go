// Package clientip extracts the caller's address from the connection or
// from proxy headers and exposes it to handlers and log records.
//
// No header is trusted by default: clients can set any of them. Pass the
// headers your proxy or CDN overwrites, e.g.
//
//	r.Use(clientip.Middleware(clientip.HeaderCFConnectingIP))
//
// The address keys the rate limiter, so trusting a header the edge does not
// control lets a client pick its own bucket.
package clientip
