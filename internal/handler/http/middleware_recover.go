package http

import (
	"net/http"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// withRecover is the outer error boundary of the middleware chain.
//
// It recovers any panic escaping downstream processing — including the
// auth gate and the request logger — records the panic value to the
// operator log, and converts the fault into a fixed 500 response with
// body {"error": "Internal server error."}. The generic body never
// carries the panic detail; only the log does.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().
					Any("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("recovered from panic")

				utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalServerError}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
