// Package binder decodes HTTP requests into request structs.
//
// Each binder is a func(r *http.Request, v any) error and several can be
// chained by handler.Wrap; later binders overwrite fields set by earlier
// ones. A binder that does not apply to a request returns
// ErrBinderNotApplicable so the chain moves on:
//
//	type validateRequest struct {
//		Phone   string `form:"phone" query:"phone"`
//		Strict  bool   `form:"strict" query:"strict"`
//		Type    string `form:"type" query:"type"`
//		Country string `form:"country" query:"country"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, validateRequest](
//		binder.Query(), binder.Form(),
//	))
//
// Booleans accept checkbox values ("on", "off") besides strconv forms.
// Slices split comma-separated values.
package binder
