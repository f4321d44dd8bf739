// Package httpbp provides HTTP helpers shared by the probe and the probe
// target service.
//
// On the client side, DrainAndClose releases a response body so the
// underlying connection can be reused or closed cleanly.
//
// On the server side, HandlerFunc and Middleware compose request handlers:
//
//	handler := httpbp.NewHandler(
//		"custom",
//		handleCustom,
//		httpbp.ServerMetrics(),
//		httpbp.AccessLog(),
//		httpbp.SupportedMethods(http.MethodGet),
//	)
//
// Middlewares run in the order given, so requests rejected by
// SupportedMethods are still counted and logged.
package httpbp
