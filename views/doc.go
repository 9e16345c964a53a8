// Package views holds the default markup of the phone check page.
//
// Components are html/template definitions embedded from templates/ and
// exposed as templ.Component values, so any of them can be swapped for a
// templ-generated component through phonecheck.Views.
package views
