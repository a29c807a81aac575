package service

import (
	"context"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=DescriptorServiceWrapper

// DescriptorService validates soft descriptors on behalf of the transports.
type DescriptorService interface {
	// ValidateDescriptor runs the rule set against d, optionally restricted
	// to fields. A descriptor that breaks rules is not an error: it comes
	// back as a result with Valid == false. Errors are reserved for requests
	// the rule set cannot evaluate, such as an unknown field name.
	ValidateDescriptor(ctx context.Context, d models.SoftDescriptor, fields ...string) (models.ValidationResult, error)
}

// GatewayService dispatches gateway requests by action name.
type GatewayService interface {
	Execute(ctx context.Context, action models.GatewayAction, req models.GatewayRequest) (models.GatewayResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DescriptorServiceWrapper defines middleware composition for DescriptorService.
// Implementations wrap an existing DescriptorService to add behavior such as
// logging.
type DescriptorServiceWrapper interface {
	Wrap(DescriptorService) DescriptorService // returns a decorated DescriptorService applying additional behavior
}
