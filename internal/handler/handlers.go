package handler

import (
	"github.com/MKhiriev/go-soft-descriptor/internal/config"
	"github.com/MKhiriev/go-soft-descriptor/internal/handler/grpc"
	"github.com/MKhiriev/go-soft-descriptor/internal/handler/http"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler per configured transport. m may be nil, in
// which case the HTTP routes are not instrumented.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		var opts []http.Option
		if m != nil && !cfg.Metrics.Disabled {
			opts = append(opts, http.WithMetrics(m, cfg.Metrics.Path))
		}
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
