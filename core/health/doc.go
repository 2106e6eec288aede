// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	r.Get("/health/live", health.Liveness)
//	r.Get("/health/ready", health.Readiness(logger, redis.Healthcheck(client)))
//	r.Get("/ping", health.NoContent)
//
// Dependency checks must follow func(context.Context) error signature.
package health
