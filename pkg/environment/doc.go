// Package environment carries the deployment stage (development, staging,
// production) through request contexts and log records.
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(r.Context()) {
//		// hide internal error details
//	}
package environment
