// Package api exposes tasks and their time logs over HTTP. Handlers decode
// and validate requests, call the services, and map service errors to the
// JSON error kinds clients expect.
package api
