package http

import (
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handler struct {
	auth    service.ClientAuthService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(auth service.ClientAuthService, appInfo service.AppInfoService, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		auth:    auth,
		appInfo: appInfo,
		logger:  logger,
	}
}
