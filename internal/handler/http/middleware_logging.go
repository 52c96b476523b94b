package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/user-directory/internal/logger"
)

// withLogging emits one log line per request once downstream processing
// has completed, with the message "<METHOD> <PATH> => <STATUS>". It is a
// side effect only and never alters the response.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Msgf("%s %s => %d", method, path, lw.status)
	})
}
