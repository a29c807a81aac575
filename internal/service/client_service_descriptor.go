package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-soft-descriptor/internal/adapter"
	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

type clientDescriptorService struct {
	validator *validators.SoftDescriptorValidator
	adapter   adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientDescriptorService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDescriptorService {
	return &clientDescriptorService{
		validator: &validators.SoftDescriptorValidator{},
		adapter:   serverAdapter,
		logger:    logger,
	}
}

func (s *clientDescriptorService) Check(d models.SoftDescriptor) models.FieldErrors {
	return s.validator.Check(d)
}

func (s *clientDescriptorService) Submit(ctx context.Context, d models.SoftDescriptor) (models.ValidationResult, error) {
	if errs := s.Check(d); !errs.IsEmpty() {
		s.logger.Debug().
			Strs("invalid_fields", errs.Fields()).
			Msg("descriptor rejected locally, not submitted")
		return models.ValidationResult{Valid: false, Scheme: d.Scheme(), Errors: errs}, nil
	}

	result, err := s.adapter.ValidateDescriptor(ctx, d)
	if err != nil {
		s.logger.Err(err).Msg("server validation failed")
		return models.ValidationResult{}, mapAdapterError(err)
	}

	return result, nil
}

func (s *clientDescriptorService) TestPurchase(ctx context.Context, d models.SoftDescriptor, amount int64) (models.GatewayResponse, error) {
	token := gateway.Authorization
	req := models.GatewayRequest{
		Amount:     amount,
		Source:     &models.PaymentSourceEnvelope{Type: models.RawTokenSource, Token: &token},
		Descriptor: &d,
	}

	resp, err := s.adapter.Gateway(ctx, models.ActionPurchase, req)
	if err != nil {
		s.logger.Err(err).Msg("test purchase failed")
		return models.GatewayResponse{}, mapAdapterError(err)
	}

	return resp, nil
}

func (s *clientDescriptorService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting server version: %w", mapAdapterError(err))
	}
	return version, nil
}
