package main

import (
	"context"
	"fmt"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/handler"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/server"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/simulator"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/workers"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("devicesim")
	cfg, err := config.GetSimulatorConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	device := simulator.NewDevice(cfg.Simulator, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	handlers, err := handler.NewHandlers(device, cfg.Simulator, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer("devicesim", handlers.HTTP.Init(), cfg.Simulator.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	background := workers.NewWorkers(device)
	background.Start(ctx)
	defer background.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
