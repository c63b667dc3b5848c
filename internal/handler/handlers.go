package handler

import (
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/handler/http"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers of the device simulator.
func NewHandlers(device http.Device, cfg config.Simulator, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Address != "" && device != nil {
		handlers.HTTP = http.NewHandler(device, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
