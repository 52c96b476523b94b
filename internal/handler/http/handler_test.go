package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
)

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	cfg := config.App{AuthToken: "boundary-secret"}
	log := logger.Nop()

	h := NewHandler(services, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, "boundary-secret", h.authToken)
	assert.Same(t, log, h.logger)
}

func TestHandler_InitRegistersUserRoutes(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{AuthToken: "t"}, logger.Nop())

	router := h.Init()
	require.NotNil(t, router)

	patterns := make(map[string]bool)
	for _, route := range router.Routes() {
		patterns[route.Pattern] = true
	}

	assert.True(t, patterns["/users"])
	assert.True(t, patterns["/users/{userID}"])
}
