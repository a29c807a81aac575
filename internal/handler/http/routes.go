package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.metrics.Middleware)

	router.Post("/api/descriptors/validate", h.validateDescriptor)
	if h.services.GatewayService != nil {
		router.Post("/api/gateway/{action}", h.executeGateway)
	}
	router.Get("/api/version/", h.getServerVersion)

	if h.metrics != nil && h.metricsPath != "" {
		router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
