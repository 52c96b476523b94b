package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
)

func TestNewHandlers_HTTPConfigured(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:    config.App{AuthToken: "t"},
		Server: config.Server{HTTPAddress: "localhost:8080"},
	}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressConfigured(t *testing.T) {
	cfg := &config.StructuredConfig{
		App: config.App{AuthToken: "t"},
	}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
