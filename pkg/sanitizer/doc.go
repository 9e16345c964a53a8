// Package sanitizer holds small string transforms used to clean form input
// and to mask values before they are logged.
//
// Transforms have the shape func(T) T and can be chained with Apply or stored
// as a pipeline with Compose:
//
//	clean := sanitizer.Compose(
//		sanitizer.RemoveControlChars,
//		sanitizer.SingleLine,
//		sanitizer.Trim,
//	)
//	phone := clean(form.Phone)
//
// MaskPhone keeps only the last four digits of a number, which is what the
// request log records instead of the raw input.
package sanitizer
