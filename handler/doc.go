// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// (see package binder) and returns a Response. Responses render either a
// full HTML page or, for DataStar requests, server-sent element patches:
//
//	func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
//		return handler.TemplPartial(
//			views.Result(params),
//			views.Page(pageParams),
//			handler.WithTarget("#result"),
//		)
//	}
//
//	r.Post("/validate", handler.Wrap(s.validate,
//		handler.WithBinders[handler.Context, ValidateRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, ValidateRequest](errHandler),
//	))
//
// Binding failures, ValidationError values returned through Error, and
// render failures go to the ErrorHandler. NewErrorHandler renders an error
// page or a DataStar toast; NewJSONErrorHandler renders the JSON envelope.
package handler
