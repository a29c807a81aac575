package grpc

import (
	"context"

	"github.com/MKhiriev/go-soft-descriptor/models"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "softdescriptor.Validator"

const (
	validateMethod = "/" + ServiceName + "/Validate"
	versionMethod  = "/" + ServiceName + "/Version"
)

// ValidateRequest asks for d to be validated, optionally restricted to
// Fields.
type ValidateRequest struct {
	Descriptor models.SoftDescriptor `json:"descriptor"`
	Fields     []string              `json:"fields,omitempty"`
}

type VersionRequest struct{}

type VersionResponse struct {
	Version string `json:"version"`
}

// ValidatorServer is the server API of the softdescriptor.Validator service.
type ValidatorServer interface {
	Validate(context.Context, *ValidateRequest) (*models.ValidationResult, error)
	Version(context.Context, *VersionRequest) (*VersionResponse, error)
}

// ServiceDesc describes softdescriptor.Validator for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ValidatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: validateHandler},
		{MethodName: "Version", Handler: versionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "softdescriptor",
}

// RegisterValidatorServer registers srv on s.
func RegisterValidatorServer(s grpc.ServiceRegistrar, srv ValidatorServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func validateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidatorServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: validateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ValidatorServer).Validate(ctx, req.(*ValidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func versionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidatorServer).Version(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: versionMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ValidatorServer).Version(ctx, req.(*VersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ValidatorClient is the client API of the softdescriptor.Validator service.
type ValidatorClient interface {
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*models.ValidationResult, error)
	Version(ctx context.Context, in *VersionRequest, opts ...grpc.CallOption) (*VersionResponse, error)
}

type validatorClient struct {
	cc grpc.ClientConnInterface
}

// NewValidatorClient returns a client that always speaks the JSON codec.
func NewValidatorClient(cc grpc.ClientConnInterface) ValidatorClient {
	return &validatorClient{cc: cc}
}

func (c *validatorClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*models.ValidationResult, error) {
	out := new(models.ValidationResult)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, validateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *validatorClient) Version(ctx context.Context, in *VersionRequest, opts ...grpc.CallOption) (*VersionResponse, error) {
	out := new(VersionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, versionMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
