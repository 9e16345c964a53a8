// Package requestid tags every request with an id that shows up in the
// X-Request-ID response header and in every log record written while
// handling the request.
package requestid
