// Package middleware provides net/http middleware for the callback endpoints
// served next to the hub.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID())
//	r.Use(middleware.Logging(log))
//
// RequestID keeps an incoming X-Request-ID or generates a UUID, stores it in
// the request context and echoes it in the response. Logging writes one
// structured record per request.
package middleware
