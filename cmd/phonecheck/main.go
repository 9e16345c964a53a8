package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/phonecheck/handler"
	"github.com/dmitrymomot/phonecheck/modules/phonecheck"
	"github.com/dmitrymomot/phonecheck/pkg/clientip"
	"github.com/dmitrymomot/phonecheck/pkg/config"
	"github.com/dmitrymomot/phonecheck/pkg/country"
	"github.com/dmitrymomot/phonecheck/pkg/environment"
	"github.com/dmitrymomot/phonecheck/pkg/httpserver"
	"github.com/dmitrymomot/phonecheck/pkg/logger"
	"github.com/dmitrymomot/phonecheck/pkg/metrics"
	"github.com/dmitrymomot/phonecheck/pkg/phoneengine"
	"github.com/dmitrymomot/phonecheck/pkg/qrcode"
	"github.com/dmitrymomot/phonecheck/pkg/ratelimiter"
	"github.com/dmitrymomot/phonecheck/pkg/requestid"
	"github.com/dmitrymomot/phonecheck/views"
)

// ErrEngineNotReady is reported by the readiness check when the engine
// rejects a known-good number.
var ErrEngineNotReady = errors.New("phone engine is not ready")

// readyNumber is a number every metadata version accepts.
const readyNumber = "+12015550123"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("phonecheck stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.App.Env)
	log, err := newLogger(cfg.App, env)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	limiter, closeLimiter, err := newLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	defer closeLimiter()

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
	)
	return srv.Run(ctx, newRouter(cfg, env, log, m, limiter))
}

func newLogger(cfg appConfig, env environment.Environment) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			country.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func newEngine(cfg phoneConfig) *phoneengine.Engine {
	return phoneengine.New(
		phoneengine.WithDefaultCountry(cfg.DefaultCountry),
		phoneengine.WithStrictMode(cfg.StrictDefault),
		phoneengine.WithOnlyCountries(cfg.onlyCountries()...),
	)
}

// newLimiter builds the per-client bucket. It returns a nil bucket when
// rate limiting is disabled.
func newLimiter(cfg ratelimiter.Config) (*ratelimiter.Bucket, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}
	store := ratelimiter.NewMemoryStore()
	bucket, err := ratelimiter.NewBucket(store, cfg)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("rate limiter: %w", err)
	}
	return bucket, store.Close, nil
}

// newRouter wires the middleware stack, health checks, metrics and the phone
// check module. m and limiter may be nil.
func newRouter(cfg Config, env environment.Environment, log *slog.Logger, m *metrics.Metrics, limiter *ratelimiter.Bucket) http.Handler {
	engine := newEngine(cfg.Phone)

	resolverOpts := []country.Option{country.WithFallback(engine.DefaultCountry())}
	if headers := cfg.Phone.countryHeaders(); len(headers) > 0 {
		resolverOpts = append(resolverOpts, country.WithHeaders(headers...))
	}
	resolver := country.NewResolver(resolverOpts...)

	errorHandler := handler.NewErrorHandler(log, views.ErrorConfig())
	svcOpts := []phonecheck.Option{
		phonecheck.WithLogger(log),
		phonecheck.WithErrorHandler(errorHandler),
		phonecheck.WithQRCodeSize(cfg.Phone.QRCodeSize),
	}
	if m != nil {
		svcOpts = append(svcOpts, phonecheck.WithObserver(m))
	}
	if cfg.Phone.QRCacheSize > 0 {
		svcOpts = append(svcOpts, phonecheck.WithQRCodeCache(qrcode.NewCache(cfg.Phone.QRCacheSize)))
	}
	svc := phonecheck.NewService(engine, views.Default(), svcOpts...)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(cfg.App.trustedIPHeaders()...),
		environment.Middleware(env),
		resolver.Middleware,
	)
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, cfg.Metrics.Path, m.Handler())
	}

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, engineReady(engine)))

	var limits []func(http.Handler) http.Handler
	if limiter != nil {
		limits = append(limits, ratelimiter.Middleware(limiter, clientKey,
			ratelimiter.WithDenyHandler(tooManyRequests(log, errorHandler)),
			ratelimiter.WithLogger(log),
		))
	}
	r.With(limits...).Mount("/", svc.Handle())

	return r
}

// clientKey limits by the resolved client address.
func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

// tooManyRequests answers API calls with a JSON envelope and everything
// else with the error page or toast.
func tooManyRequests(log *slog.Logger, html handler.ErrorHandler[handler.Context]) http.Handler {
	api := handler.NewJSONErrorHandler(log)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := handler.NewContext(w, r)
		if strings.HasPrefix(r.URL.Path, "/api/") {
			api(c, handler.ErrTooManyRequests)
			return
		}
		html(c, handler.ErrTooManyRequests)
	})
}

func engineReady(engine *phoneengine.Engine) httpserver.ReadinessCheck {
	return func(context.Context) error {
		if !engine.Instance(readyNumber, phoneengine.WithOnlyCountries()).IsValidNumber() {
			return fmt.Errorf("%w: %s rejected", ErrEngineNotReady, readyNumber)
		}
		return nil
	}
}
