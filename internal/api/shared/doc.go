// Package shared holds the HTTP helpers used by both handlers and middleware:
// JSON and error responses, request decoding and validation, and the
// request trace ID carried in the context.
package shared
