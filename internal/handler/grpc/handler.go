// Package grpc implements the gRPC transport of the descriptor server.
//
// Messages are plain Go structs carried by a JSON codec registered under
// the "json" content subtype, so no generated protobuf code is involved.
// The service is described by hand in [ServiceDesc].
package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Validate implements [ValidatorServer]. An invalid descriptor is a normal
// response with Valid == false; only requests that cannot be evaluated
// fail with a status error.
func (h *Handler) Validate(ctx context.Context, req *ValidateRequest) (*models.ValidationResult, error) {
	result, err := h.services.DescriptorService.ValidateDescriptor(ctx, req.Descriptor, req.Fields...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("descriptor validation could not run")
		return nil, toStatus(err)
	}
	return &result, nil
}

// Version implements [ValidatorServer].
func (h *Handler) Version(ctx context.Context, _ *VersionRequest) (*VersionResponse, error) {
	return &VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, validators.ErrUnknownField), errors.Is(err, validators.ErrUnsupportedType):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
