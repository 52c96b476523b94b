package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-directory/internal/logger"
)

func executeRecover(h *Handler, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.withRecover(next)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithRecover_PanicBecomesGeneric500(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom: secret detail")
	})

	rr := executeRecover(h, next)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Internal server error."}`, rr.Body.String())
	// the panic value must never leak into the response body
	assert.NotContains(t, rr.Body.String(), "secret detail")
}

func TestWithRecover_PanicWithErrorValue(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(assert.AnError)
	})

	rr := executeRecover(h, next)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Internal server error."}`, rr.Body.String())
}

func TestWithRecover_NoPanic_PassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})

	rr := executeRecover(h, next)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
