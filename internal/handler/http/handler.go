package http

import (
	"github.com/MKhiriev/go-sample-api/internal/config"
	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/service"
)

type Handler struct {
	services *service.Services
	api      config.API

	logger *logger.Logger
}

func NewHandler(services *service.Services, api config.API, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		api:      api,
		logger:   logger,
	}
}
