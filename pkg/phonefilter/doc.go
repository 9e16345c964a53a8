// Package phonefilter turns the raw output of a phone-number engine into the
// final verdict shown to a user.
//
// The engine (see package phoneengine) decides whether a number is valid,
// which country it belongs to, how it is formatted and which kind of line it
// is. This package adds one decision on top of that: a user-selected number
// type filter that can reject an otherwise valid number, and the table of
// human-readable messages and labels used to explain the verdict.
//
// # Outcomes
//
// Every result falls into one of three tiers:
//
//   - OutcomeInvalid: the engine rejected the number. The message comes from
//     the error-code table and no formats or type are reported.
//   - OutcomeTypeMismatch: the number is valid but not of the requested type.
//     Formats and type are still reported since the number itself is fine.
//   - OutcomeValid: no error message.
//
// # Usage
//
//	raw := phonefilter.Collect(instance, input)
//	res := phonefilter.Filter(raw, phonefilter.FilterMobile)
//	if !res.IsValid {
//		fmt.Println(res.ErrorMessage)
//	}
//
// Filter is a pure function: it performs no I/O, holds no state and is safe
// for concurrent use.
package phonefilter
