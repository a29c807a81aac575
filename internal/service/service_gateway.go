package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

type gatewayService struct {
	gateway gateway.Gateway
	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewGatewayService builds the service on top of gw. m may be nil.
func NewGatewayService(gw gateway.Gateway, m *metrics.Metrics, logger *logger.Logger) GatewayService {
	return &gatewayService{
		gateway: gw,
		metrics: m,
		logger:  logger,
	}
}

func (s *gatewayService) Execute(ctx context.Context, action models.GatewayAction, req models.GatewayRequest) (models.GatewayResponse, error) {
	if s.gateway == nil {
		return models.GatewayResponse{}, ErrGatewayUnavailable
	}

	var source models.PaymentSource
	if req.Source != nil {
		src, err := req.Source.Source()
		if err != nil {
			return models.GatewayResponse{}, fmt.Errorf("%w: %w", ErrInvalidPaymentSource, err)
		}
		source = src
	}

	opts := gateway.Options{Descriptor: req.Descriptor}

	var (
		resp models.GatewayResponse
		err  error
	)
	switch action {
	case models.ActionAuthorize:
		resp, err = s.gateway.Authorize(ctx, req.Amount, source, opts)
	case models.ActionPurchase:
		resp, err = s.gateway.Purchase(ctx, req.Amount, source, opts)
	case models.ActionRecurring:
		resp, err = s.gateway.Recurring(ctx, req.Amount, source, opts)
	case models.ActionCredit:
		resp, err = s.gateway.Credit(ctx, req.Amount, source, opts)
	case models.ActionRefund:
		resp, err = s.gateway.Refund(ctx, req.Amount, req.Reference, opts)
	case models.ActionCapture:
		resp, err = s.gateway.Capture(ctx, req.Amount, req.Reference, opts)
	case models.ActionVoid:
		resp, err = s.gateway.Void(ctx, req.Reference, opts)
	case models.ActionStore:
		resp, err = s.gateway.Store(ctx, source, opts)
	case models.ActionUnstore:
		resp, err = s.gateway.Unstore(ctx, req.Reference, opts)
	default:
		return models.GatewayResponse{}, fmt.Errorf("%w: %q", gateway.ErrUnknownAction, action)
	}

	s.metrics.ObserveGatewayCall(string(action), outcome(resp, err))
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("gateway %s: %w", action, err)
	}

	return resp, nil
}

func outcome(resp models.GatewayResponse, err error) string {
	switch {
	case err != nil:
		return metrics.OutcomeError
	case resp.Success:
		return metrics.OutcomeSuccess
	default:
		return metrics.OutcomeFailure
	}
}
