// Package httpserver runs the HTTP listener with graceful shutdown and
// provides liveness and readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns once the context is cancelled or SIGINT/SIGTERM arrives and
// in-flight requests have drained, bounded by the shutdown timeout.
package httpserver
