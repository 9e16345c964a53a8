// Package phonecheck is the phone validation page and its JSON API.
//
// A Service runs each submitted number through a phoneengine.Engine and
// phonefilter.Filter, records the outcome with an Observer and the logger,
// and renders the result with the injected Views:
//
//	engine := phoneengine.New(phoneengine.WithDefaultCountry("US"))
//	svc := phonecheck.NewService(engine, views.Default(),
//		phonecheck.WithLogger(log),
//		phonecheck.WithObserver(metrics),
//		phonecheck.WithErrorHandler(errHandler),
//	)
//	r.Mount("/", svc.Handle())
//
// Plain form posts get the whole page back. DataStar requests get server
// sent patches of the "#result" section, and "#phone-form" on clear.
// Numbers are logged masked to their last four digits.
package phonecheck
