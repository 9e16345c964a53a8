package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/phonecheck/pkg/binder"
	"github.com/dmitrymomot/phonecheck/pkg/environment"
	"github.com/dmitrymomot/phonecheck/pkg/logger"
	"github.com/dmitrymomot/phonecheck/pkg/requestid"
)

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig holds the components NewErrorHandler renders.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for plain requests.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders a notification patched into DataStar pages.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

type errorInfo struct {
	status  int
	message string
	kind    string
	level   slog.Level
}

// classify maps err to a status code and message key.
func classify(err error) (int, string) {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Key
	case asValidationError(err) != nil:
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.Code, ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidJSON):
		return ErrBadRequest.Code, ErrBadRequest.Key
	default:
		return ErrInternalServerError.Code, ErrInternalServerError.Key
	}
}

func asValidationError(err error) ValidationError {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return ValidationErrorFrom(err)
}

func describe(ctx Context, err error) errorInfo {
	status, key := classify(err)
	info := errorInfo{
		status:  status,
		message: "Something went wrong. Please try again.",
		kind:    "error",
		level:   slog.LevelError,
	}

	switch ve := asValidationError(err); {
	case ve != nil:
		info.message = ve.Error()
	case status < http.StatusInternalServerError:
		info.message = http.StatusText(status)
	case !environment.IsProduction(ctx):
		info.message = key + ": " + err.Error()
	}

	if status < http.StatusInternalServerError {
		info.kind = "warning"
		info.level = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns the error handler for HTML endpoints. Plain
// requests get cfg.ErrorPage with the error status; DataStar requests get
// cfg.ErrorToast patched into cfg.ToastTarget. Server error details are
// shown only outside production.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := describe(ctx, err)
		logError(log, ctx, err, info)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			toast := cfg.ErrorToast(ErrorToastParams{
				Message:   info.message,
				Type:      info.kind,
				RequestID: reqID,
			})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast",
					logger.Error(rerr),
					logger.Event("render_error_toast"),
				)
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.message, info.status)
			return
		}
		page := cfg.ErrorPage(ErrorPageParams{
			Error:      info.message,
			StatusCode: info.status,
			RequestID:  reqID,
			RetryURL:   "/",
		})
		if rerr := TemplStatus(info.status, page).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error page",
				logger.Error(rerr),
				logger.Event("render_error_page"),
			)
		}
	}
}

// NewJSONErrorHandler returns the error handler for JSON endpoints.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		info := describe(ctx, err)
		logError(log, ctx, err, info)
		if rerr := JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
			log.ErrorContext(ctx, "failed to render json error",
				logger.Error(rerr),
				logger.Event("render_json_error"),
			)
		}
	}
}

func logError(log *slog.Logger, ctx Context, err error, info errorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.level, "request error",
		logger.Error(err),
		slog.Int("status_code", info.status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}
