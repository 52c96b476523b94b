package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-directory/internal/logger"
)

func executeTraceID(incoming string, next http.Handler) *httptest.ResponseRecorder {
	h := &Handler{logger: logger.Nop()}
	middleware := h.withTraceID(next)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_MintsIDWhenHeaderAbsent(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := executeTraceID("", next)

	got := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "minted trace ID must be a valid UUID")
}

func TestWithTraceID_EchoesIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := executeTraceID("trace-abc-123", next)

	assert.Equal(t, "trace-abc-123", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	var sawLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		sawLogger = log != nil
		w.WriteHeader(http.StatusOK)
	})

	executeTraceID("", next)

	assert.True(t, sawLogger)
}
