package service

import (
	"context"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/utils"
	"github.com/MKhiriev/go-soft-descriptor/models"
	"github.com/rs/zerolog"
)

// DescriptorLoggingService logs every validation outcome of the wrapped
// service.
type DescriptorLoggingService struct {
	inner  DescriptorService
	logger *logger.Logger
}

func NewDescriptorLoggingService(logger *logger.Logger) DescriptorServiceWrapper {
	return &DescriptorLoggingService{
		logger: logger,
	}
}

func (l *DescriptorLoggingService) ValidateDescriptor(ctx context.Context, d models.SoftDescriptor, fields ...string) (models.ValidationResult, error) {
	log := l.logger.GetChildLogger()
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
	}

	result, err := l.inner.ValidateDescriptor(ctx, d, fields...)
	if err != nil {
		log.Err(err).Str("merchant_id", d.MerchantID).Strs("fields", fields).Msg("soft descriptor validation failed")
		return result, err
	}

	event := log.Debug()
	if !result.Valid {
		event = log.Info().Strs("invalid_fields", result.Errors.Fields())
	}
	event.
		Str("merchant_id", d.MerchantID).
		Stringer("scheme", result.Scheme).
		Bool("valid", result.Valid).
		Msg("soft descriptor validated")

	return result, nil
}

func (l *DescriptorLoggingService) Wrap(inner DescriptorService) DescriptorService {
	l.inner = inner
	return l
}
