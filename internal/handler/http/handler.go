package http

import (
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

type Handler struct {
	device    Device
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(device Device, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		device:    device,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
