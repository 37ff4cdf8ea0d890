// Package middleware provides the HTTP middleware chain for the content
// API: request IDs, structured request logging, panic recovery, CORS,
// and gzip compression.
//
// Middlewares compose via Chain and hold no per-request state beyond the
// request context. There is no rate limiting or idempotency layer; every
// endpoint is a stateless read and requests share nothing.
package middleware
