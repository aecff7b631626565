package http

import (
	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/service"
)

type Handler struct {
	services *service.Services

	username     string
	passwordHash []byte
	version      string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.PublisherConfig, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
		version:      version,
		logger:       logger,
	}
}
