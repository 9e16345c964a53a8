// Package logger builds the application's *slog.Logger and provides the
// attribute constructors used across the codebase.
//
// New returns a logger configured with functional options. Its handler is
// wrapped in LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so request-scoped values (request id, client ip, resolved
// default country, environment) appear without being passed around.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientip.LoggerExtractor(),
//			country.LoggerExtractor(),
//		),
//	)
//
//	log.InfoContext(ctx, "phone validated",
//		logger.Phone(input),
//		logger.Outcome("valid"),
//		logger.TypeFilter("mobile"),
//	)
//
// # Formats
//
// FormatJSON is the default. FormatText uses slog's text handler and is
// what development picks. FormatPretty renders through
// github.com/lmittmann/tint and colors output only when writing to the
// process streams.
//
// # Phone numbers
//
// Raw phone numbers are personal data. Log them only through Phone, which
// keeps the last four digits.
//
// # Nil-safe helpers
//
// Error, RequestID, Country and NumberType return an empty slog.Attr for
// zero input, and slog drops empty attributes, so callers do not need to
// guard them.
package logger
