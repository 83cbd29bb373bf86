// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// (or text) logging with a level that can be changed while the server runs, and
// carries request-scoped loggers through context.Context.
package logger
