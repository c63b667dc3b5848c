package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/adapter"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/client"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/metrics"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/server"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/service"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/tui"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("dashboard", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	deviceAdapter, err := adapter.NewHTTPDeviceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create device adapter")
	}

	var (
		syncMetrics   *metrics.SyncMetrics
		metricsServer server.Server
	)
	if cfg.Metrics.Address != "" {
		syncMetrics = metrics.NewSyncMetrics()
		metricsServer, err = server.NewServer("metrics", syncMetrics.Handler(), cfg.Metrics.Address, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create metrics server")
		}
	}

	services := service.NewClientServices(cfg, deviceAdapter, syncMetrics, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services.SyncClient, buildInfo, log)

	app, err := client.NewApp(services, ui, metricsServer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init dashboard app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("dashboard run error")
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
