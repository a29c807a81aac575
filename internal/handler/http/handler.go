package http

import (
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
)

type Handler struct {
	services *service.Services

	metrics     *metrics.Metrics
	metricsPath string

	logger *logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics instruments every route with m and serves the registry on path.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
