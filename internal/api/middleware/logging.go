package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
)

// StatusLevel maps a response status to the level it is logged at.
func StatusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RequestLogger logs one line per request once the handler has returned.
// It uses the request-scoped logger from the context, so it must run after
// the trace middleware.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromContext(r.Context()).LogAttrs(r.Context(), StatusLevel(status), http.StatusText(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("proto", r.Proto),
			slog.String("request_id", chimw.GetReqID(r.Context())),
			slog.Int("status", status),
			slog.Int("bytes_written", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}
