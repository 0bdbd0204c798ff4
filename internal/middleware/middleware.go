// Package middleware stores the HTTP cross-cutting concerns: CORS,
// request logging, request IDs, panic recovery, New Relic tracing, and
// the global error handler.
package middleware
