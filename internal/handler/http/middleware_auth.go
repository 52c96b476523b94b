package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// bearerPrefix is the literal scheme prefix the auth gate requires in the
// "Authorization" header.
const bearerPrefix = "Bearer "

// auth is an HTTP middleware that enforces the static bearer-token check.
//
// It inspects the incoming "Authorization" header and compares the bearer
// credential against the single configured boundary secret. There is no
// token issuance, expiry, or per-user identity behind it — every caller
// shares the same secret.
//
// The middleware rejects requests with HTTP 401 Unauthorized in two ways:
//   - 401 with [ErrMissingOrInvalidToken] body — the header is absent,
//     blank, or does not start with the "Bearer " prefix.
//   - 401 with [ErrInvalidToken] body — the prefix is present but the
//     trimmed remainder does not equal the boundary secret.
//
// On success, control passes downstream unchanged. The gate applies to
// every route; there are no exemptions.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Err(ErrMissingOrInvalidToken).Str("header", authHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: ErrMissingOrInvalidToken.Error()}, http.StatusUnauthorized)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token != h.authToken {
			log.Err(ErrInvalidToken).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidToken.Error()}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
