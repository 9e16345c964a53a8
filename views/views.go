package views

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/phonecheck/handler"
	"github.com/dmitrymomot/phonecheck/modules/phonecheck"
)

// DataStarURL is the client bundle loaded by every page.
const DataStarURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(
	template.New("views").
		Funcs(template.FuncMap{
			"datastarURL": func() string { return DataStarURL },
			"statusText":  http.StatusText,
		}).
		ParseFS(files, "templates/*.html"),
)

func render(name string, data any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), data)
}

// Default returns the views for phonecheck.NewService.
func Default() *phonecheck.Views {
	return &phonecheck.Views{
		Page:        Page,
		Form:        Form,
		Result:      Result,
		EmptyResult: EmptyResult,
	}
}

// ErrorConfig returns the error views for handler.NewErrorHandler.
func ErrorConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	}
}

type resultData struct {
	phonecheck.ResultParams
	QRCode template.URL
	TelURI template.URL
}

// trusted marks the data and tel URIs built by pkg/qrcode as safe URLs.
func trusted(p phonecheck.ResultParams) resultData {
	return resultData{
		ResultParams: p,
		QRCode:       template.URL(p.QRCode),
		TelURI:       template.URL(p.TelURI),
	}
}

type pageData struct {
	Form   phonecheck.FormParams
	Result *resultData
}

func Page(p phonecheck.PageParams) templ.Component {
	data := pageData{Form: p.Form}
	if p.Result != nil {
		r := trusted(*p.Result)
		data.Result = &r
	}
	return render("page", data)
}

func Form(p phonecheck.FormParams) templ.Component {
	return render("form", p)
}

func Result(p phonecheck.ResultParams) templ.Component {
	return render("result", trusted(p))
}

func EmptyResult() templ.Component {
	return render("empty_result", nil)
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return render("error_page", p)
}

func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return render("error_toast", p)
}
