package main

import (
	"fmt"

	"github.com/MKhiriev/go-soft-descriptor/internal/config"
	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/handler"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/internal/server"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
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

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("soft-descriptor-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("soft-descriptor-server", logger.WithLevel(cfg.App.Level()))
	log.Debug().Any("config", cfg).Msg("received configs")

	var m *metrics.Metrics
	if !cfg.Metrics.Disabled {
		m = metrics.New()
	}

	validator := validators.NewSoftDescriptorValidator()

	var gw gateway.Gateway
	if !cfg.Gateway.Disabled {
		gw = gateway.NewBogusGateway(validator, log)
	}

	services, err := service.NewServices(*cfg, validator, gw, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
