package phonecheck

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/phonecheck/handler"
	"github.com/dmitrymomot/phonecheck/pkg/country"
	"github.com/dmitrymomot/phonecheck/pkg/logger"
	"github.com/dmitrymomot/phonecheck/pkg/phoneengine"
	"github.com/dmitrymomot/phonecheck/pkg/phonefilter"
	"github.com/dmitrymomot/phonecheck/pkg/qrcode"
)

// Observer receives every completed check. *metrics.Metrics implements it.
type Observer interface {
	ObserveValidation(res phonefilter.ValidationResult, filter phonefilter.NumberTypeFilter, strict bool)
}

type nopObserver struct{}

func (nopObserver) ObserveValidation(phonefilter.ValidationResult, phonefilter.NumberTypeFilter, bool) {}

// Service validates phone numbers and serves the page and the JSON API.
type Service struct {
	engine           *phoneengine.Engine
	views            *Views
	log              *slog.Logger
	observer         Observer
	errorHandler     handler.ErrorHandler[handler.Context]
	jsonErrorHandler handler.ErrorHandler[handler.Context]
	qrSize           int
	qrCache          *qrcode.Cache
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithErrorHandler sets the handler for the HTML endpoints.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithQRCodeSize sets the side of the tel: QR code in pixels.
// Zero disables the QR code.
func WithQRCodeSize(px int) Option {
	return func(s *Service) {
		if px >= 0 {
			s.qrSize = px
		}
	}
}

// WithQRCodeCache reuses rendered QR codes across checks.
func WithQRCodeCache(c *qrcode.Cache) Option {
	return func(s *Service) {
		s.qrCache = c
	}
}

// NewService returns a Service checking numbers with engine and rendering
// views.
func NewService(engine *phoneengine.Engine, views *Views, opts ...Option) *Service {
	s := &Service{
		engine:   engine,
		views:    views,
		log:      slog.Default(),
		observer: nopObserver{},
		qrSize:   192,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	s.jsonErrorHandler = handler.NewJSONErrorHandler(s.log)
	return s
}

// Check describes one validation.
type Check struct {
	Phone      string
	TypeFilter phonefilter.NumberTypeFilter
	// Strict overrides the engine default when set.
	Strict     *bool
	// Country overrides the default country when set.
	Country    string
	// Language selects the language of the country name.
	Language   language.Tag
}

// Validate runs phone through the engine and the filter, then records the
// outcome. The default country is c.Country, then the country resolved for
// the request, then the engine default.
func (s *Service) Validate(ctx context.Context, c Check) phonefilter.ValidationResult {
	strict := s.strict(c.Strict)
	opts := []phoneengine.Option{phoneengine.WithStrictMode(strict)}
	if cc := s.defaultCountry(ctx, c.Country); cc != "" {
		opts = append(opts, phoneengine.WithDefaultCountry(cc))
	}
	if c.Language != language.Und {
		opts = append(opts, phoneengine.WithLanguage(c.Language))
	}

	raw := phonefilter.Collect(s.engine.Instance(c.Phone, opts...), c.Phone)
	res := phonefilter.Filter(raw, c.TypeFilter)

	s.observer.ObserveValidation(res, c.TypeFilter, strict)
	s.log.InfoContext(ctx, "phone number checked",
		logger.Component("phonecheck"),
		logger.Phone(c.Phone),
		logger.Outcome(string(res.Outcome())),
		logger.TypeFilter(c.TypeFilter.String()),
		logger.Strict(strict),
		logger.Country(res.CountryCode),
		logger.NumberType(res.NumberType),
	)
	return res
}

func (s *Service) strict(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.engine.StrictMode()
}

func (s *Service) defaultCountry(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if cc := country.FromContext(ctx); cc != "" {
		return cc
	}
	return s.engine.DefaultCountry()
}

func (s *Service) resultParams(ctx context.Context, req ValidateRequest, res phonefilter.ValidationResult) ResultParams {
	p := ResultParams{
		Result:  res,
		Outcome: res.Outcome(),
		Strict:  s.strict(req.Strict),
		Type:    req.Type,
	}
	if !res.IsValid || s.qrSize == 0 {
		return p
	}

	tel, err := qrcode.TelURI(res.E164Number)
	if err != nil {
		return p
	}
	p.TelURI = tel
	img, err := s.telImage(res.E164Number)
	if err != nil {
		s.log.WarnContext(ctx, "failed to render qr code",
			logger.Component("phonecheck"),
			logger.Error(err),
		)
		return p
	}
	p.QRCode = img
	return p
}

func (s *Service) telImage(e164 string) (string, error) {
	if s.qrCache != nil {
		return s.qrCache.TelImage(e164, s.qrSize)
	}
	return qrcode.TelImage(e164, s.qrSize)
}

func (s *Service) formParams(ctx context.Context, req ValidateRequest) FormParams {
	return FormParams{
		Phone:          req.Phone,
		Strict:         s.strict(req.Strict),
		Type:           req.Type,
		Country:        req.Country,
		DefaultCountry: s.defaultCountry(ctx, ""),
		TypeOptions:    typeOptions(req.Type),
	}
}
