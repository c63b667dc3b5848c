package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/server"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/service"
)

var errNoServices = errors.New("client services are not provided")

type App struct {
	services *service.ClientServices
	ui       UI
	metrics  server.Server

	logger *logger.Logger
}

// NewApp assembles the dashboard runtime. metricsServer may be nil.
func NewApp(services *service.ClientServices, ui UI, metricsServer server.Server, log *logger.Logger) (*App, error) {
	if services == nil || services.SyncClient == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errors.New("ui is not provided")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		services: services,
		ui:       ui,
		metrics:  metricsServer,
		logger:   log,
	}, nil
}

// Run implements [Client]. The sync client is closed before Run returns,
// whatever way the UI exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	metricsDone := make(chan struct{})
	if a.metrics != nil {
		go func() {
			defer close(metricsDone)
			if err := a.metrics.RunServer(ctx); err != nil {
				a.logger.Err(err).Msg("metrics server stopped")
			}
		}()
	} else {
		close(metricsDone)
	}

	a.services.SyncClient.Start(ctx)
	a.logger.Info().Msg("dashboard started")

	uiErr := a.ui.Run(ctx)

	a.services.SyncClient.Close()
	cancel()
	if a.metrics != nil {
		a.metrics.Shutdown()
	}
	<-metricsDone

	if uiErr != nil {
		return fmt.Errorf("dashboard ui: %w", uiErr)
	}

	a.logger.Info().Msg("dashboard stopped")
	return nil
}
