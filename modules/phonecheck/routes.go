package phonecheck

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/phonecheck/handler"
	"github.com/dmitrymomot/phonecheck/pkg/binder"
	"github.com/dmitrymomot/phonecheck/pkg/country"
	"github.com/dmitrymomot/phonecheck/pkg/phonefilter"
)

// Handle returns the module router:
//
//	GET  /              page; ?phone= prefills the form and shows a result
//	POST /validate      form submit; DataStar requests get a #result patch
//	GET  /clear         empty form and result
//	POST /api/validate  JSON in, {"data": result} out
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](
			binder.Query(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	r.Get("/clear", handler.Wrap(s.clear,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/api/validate", handler.Wrap(s.validateAPI,
		handler.WithBinders[handler.Context, ValidateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.jsonErrorHandler),
	))

	r.NotFound(s.fail(handler.ErrNotFound))
	r.MethodNotAllowed(s.fail(handler.ErrMethodNotAllowed))

	return r
}

func (s *Service) fail(err error) http.HandlerFunc {
	return handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Error(err) },
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	)
}

func (s *Service) page(ctx handler.Context, req ValidateRequest) handler.Response {
	req = req.normalize()
	if err := req.validate(); err != nil {
		return handler.Error(handler.ValidationErrorFrom(err))
	}

	params := PageParams{Form: s.formParams(ctx, req)}
	if req.Phone != "" {
		result := s.check(ctx, req)
		params.Result = &result
	}
	return handler.Templ(s.views.Page(params))
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	req = req.normalize()
	if err := req.validate(); err != nil {
		return handler.Error(handler.ValidationErrorFrom(err))
	}

	result := s.check(ctx, req)
	return handler.TemplPartial(
		s.views.Result(result),
		s.views.Page(PageParams{Form: s.formParams(ctx, req), Result: &result}),
		handler.WithTarget("#result"),
	)
}

func (s *Service) clear(ctx handler.Context, _ struct{}) handler.Response {
	form := s.formParams(ctx, ValidateRequest{}.normalize())
	return handler.TemplMulti(
		s.views.Page(PageParams{Form: form}),
		handler.Patch(s.views.Form(form), handler.WithTarget("#phone-form")),
		handler.Patch(s.views.EmptyResult(), handler.WithTarget("#result")),
	)
}

func (s *Service) validateAPI(ctx handler.Context, req ValidateRequest) handler.Response {
	req = req.normalize()
	if err := req.validateAPI(); err != nil {
		return handler.Error(handler.ValidationErrorFrom(err))
	}
	c := s.checkFor(ctx, req)
	res := s.Validate(ctx, c)
	return handler.JSON(res, handler.WithJSONMeta(APIMeta{
		Outcome:        res.Outcome(),
		TypeFilter:     c.TypeFilter,
		Strict:         s.strict(c.Strict),
		DefaultCountry: s.defaultCountry(ctx, c.Country),
	}))
}

func (s *Service) check(ctx handler.Context, req ValidateRequest) ResultParams {
	res := s.Validate(ctx, s.checkFor(ctx, req))
	return s.resultParams(ctx, req, res)
}

// checkFor expects a normalized and validated request.
func (s *Service) checkFor(ctx handler.Context, req ValidateRequest) Check {
	filter, _ := phonefilter.ParseTypeFilter(req.Type)
	return Check{
		Phone:      req.Phone,
		TypeFilter: filter,
		Strict:     req.Strict,
		Country:    req.Country,
		Language:   country.Language(ctx.Request(), language.English),
	}
}
