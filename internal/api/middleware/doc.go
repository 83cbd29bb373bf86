// Package middleware provides the HTTP middleware applied by the router:
// trace IDs with request-scoped loggers, structured request logging, and
// optional per-client rate limiting.
package middleware
