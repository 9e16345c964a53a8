package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to. Without it
// DataStar matches the component's root element by id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component of a TemplMulti response.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	options []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}
	return renderHTML(w, r, t.status, t.full)
}

// Templ renders component as an HTML page, or as a single element patch
// for DataStar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: component, full: component, status: http.StatusOK, options: opts}
}

// TemplPartial patches partial for DataStar requests and renders full
// for everything else.
//
//	return handler.TemplPartial(
//		views.Result(params),
//		views.Page(pageParams),
//		handler.WithTarget("#result"),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: partial, full: full, status: http.StatusOK, options: opts}
}

// TemplStatus is Templ with a custom status code for the HTML page.
// DataStar streams always answer 200.
func TemplStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: component, full: component, status: status, options: opts}
}

type templMultiResponse struct {
	patches []TemplPatch
	full    templ.Component
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}
	return renderHTML(w, r, http.StatusOK, t.full)
}

// TemplMulti sends several patches in one DataStar stream. Plain
// requests get full instead.
func TemplMulti(full templ.Component, patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches, full: full}
}

func renderHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return c.Render(r.Context(), w)
}
