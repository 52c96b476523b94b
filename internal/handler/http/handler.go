package http

import (
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
)

type Handler struct {
	services *service.Services

	// authToken is the boundary secret every request's bearer credential
	// is compared against.
	authToken string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		authToken: cfg.AuthToken,
		logger:    logger,
	}
}
