package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-directory/internal/logger"
)

// ---- Helpers ----

const testAuthToken = "secret-token-123"

func newAuthHandler() *Handler {
	return &Handler{
		authToken: testAuthToken,
		logger:    logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401 missing token",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMissingOrInvalidToken.Error(),
		},
		{
			name:           "no Bearer prefix → 401 missing token",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMissingOrInvalidToken.Error(),
		},
		{
			name:           "lowercase bearer scheme is not accepted",
			authHeader:     "bearer " + testAuthToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMissingOrInvalidToken.Error(),
		},
		{
			name:           "prefix without a space → 401 missing token",
			authHeader:     "Bearer" + testAuthToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMissingOrInvalidToken.Error(),
		},
		{
			name:           "wrong token → 401 invalid token",
			authHeader:     "Bearer wrong-token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrInvalidToken.Error(),
		},
		{
			name:           "empty token after prefix → 401 invalid token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrInvalidToken.Error(),
		},
		{
			name:           "valid token → next called",
			authHeader:     "Bearer " + testAuthToken,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "valid token with trailing whitespace is trimmed",
			authHeader:     "Bearer " + testAuthToken + "  ",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, `{"error": "`+tt.expectedBody+`"}`, rr.Body.String())
			}
		})
	}
}

// ---- Exact rejection bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newAuthHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.JSONEq(t, `{"error": "Unauthorized: Missing or invalid token."}`, rr.Body.String())
	})

	t.Run("invalid token body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer nope", next)
		assert.JSONEq(t, `{"error": "Unauthorized: Invalid token."}`, rr.Body.String())
	})

	t.Run("rejection body is JSON", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})
}

// ---- Concurrent requests — no races ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newAuthHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer "+testAuthToken)
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
