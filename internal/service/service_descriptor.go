// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

type descriptorService struct {
	validator validators.Validator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewDescriptorService builds the service on top of validator. m may be nil.
func NewDescriptorService(validator validators.Validator, m *metrics.Metrics, logger *logger.Logger) DescriptorService {
	return &descriptorService{
		validator: validator,
		metrics:   m,
		logger:    logger,
	}
}

func (s *descriptorService) ValidateDescriptor(ctx context.Context, d models.SoftDescriptor, fields ...string) (models.ValidationResult, error) {
	result := models.ValidationResult{
		Valid:  true,
		Scheme: d.Scheme(),
	}

	var descErr *validators.DescriptorError
	err := s.validator.Validate(ctx, d, fields...)
	switch {
	case err == nil:
	case errors.As(err, &descErr):
		result.Valid = false
		result.Errors = descErr.Errors
	default:
		return models.ValidationResult{}, fmt.Errorf("error validating soft descriptor: %w", err)
	}

	s.metrics.ObserveValidation(result.Scheme.String(), metricViolations(descErr))
	return result, nil
}

func metricViolations(err *validators.DescriptorError) []metrics.Violation {
	if err == nil {
		return nil
	}

	out := make([]metrics.Violation, 0, len(err.Violations))
	for _, v := range err.Violations {
		out = append(out, metrics.Violation{Field: v.Field, Kind: string(v.Kind)})
	}
	return out
}
