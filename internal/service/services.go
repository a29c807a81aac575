package service

import (
	"fmt"

	"github.com/MKhiriev/go-soft-descriptor/internal/config"
	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
)

type Services struct {
	DescriptorService DescriptorService
	GatewayService    GatewayService
	AppInfoService    AppInfoService
}

// NewServices wires the services of the server. gw is nil when the gateway
// is disabled, in which case GatewayService is nil too.
func NewServices(cfg config.StructuredConfig, validator validators.Validator, gw gateway.Gateway, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	descriptors := NewDescriptorLoggingService(logger).
		Wrap(NewDescriptorService(validator, m, logger))

	var gateways GatewayService
	if gw != nil {
		gateways = NewGatewayService(gw, m, logger)
	}

	return &Services{
		DescriptorService: descriptors,
		GatewayService:    gateways,
		AppInfoService:    appInfo,
	}, nil
}
