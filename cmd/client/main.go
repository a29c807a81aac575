package main

import (
	"fmt"

	"github.com/MKhiriev/go-soft-descriptor/internal/adapter"
	"github.com/MKhiriev/go-soft-descriptor/internal/client"
	"github.com/MKhiriev/go-soft-descriptor/internal/config"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/internal/tui"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("soft-descriptor-client", config.DefaultClientLogFile).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("soft-descriptor-client", cfg.Adapter.LogFile, logger.WithLevel(cfg.App.Level()))

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
