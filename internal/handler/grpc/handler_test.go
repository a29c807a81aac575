package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

type fixedVersion string

func (v fixedVersion) GetAppVersion(context.Context) string { return string(v) }

// startServer runs the Validator service on an in-memory listener and
// returns a client connected to it.
func startServer(t *testing.T) ValidatorClient {
	t.Helper()

	services := &service.Services{
		DescriptorService: service.NewDescriptorService(validators.NewSoftDescriptorValidator(), nil, logger.Nop()),
		AppInfoService:    fixedVersion("v9.9.9"),
	}
	h := NewHandler(services, logger.Nop())

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptors()...))
	RegisterValidatorServer(srv, h)

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewValidatorClient(conn)
}

func TestValidate_Valid(t *testing.T) {
	client := startServer(t)

	d := models.NewSoftDescriptor("123456789012", "Merchant Name", models.SoftDescriptorOptions{MerchantURL: "example.com"})
	got, err := client.Validate(context.Background(), &ValidateRequest{Descriptor: *d})

	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, models.SchemePNS, got.Scheme)
	assert.True(t, got.Errors.IsEmpty())
}

func TestValidate_InvalidIsNotAnError(t *testing.T) {
	client := startServer(t)

	d := models.NewSoftDescriptor("123456", "Mer", models.SoftDescriptorOptions{
		ProductDescription: "this is far too long",
		MerchantEmail:      "merchant@example.com",
	})
	got, err := client.Validate(context.Background(), &ValidateRequest{Descriptor: *d})

	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, models.SchemeSalem, got.Scheme)
	assert.Equal(t, []string{validators.FieldProductDescription, validators.FieldMerchantEmail}, got.Errors.Fields())
}

func TestValidate_ScopedFields(t *testing.T) {
	client := startServer(t)

	got, err := client.Validate(context.Background(), &ValidateRequest{
		Descriptor: models.SoftDescriptor{MerchantURL: "https://example.com"},
		Fields:     []string{validators.FieldMerchantURL},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{validators.MsgContactTooLong}, got.Errors.On(validators.FieldMerchantURL))
	assert.False(t, got.Errors.Has(validators.FieldMerchantID))
}

func TestValidate_UnknownFieldIsInvalidArgument(t *testing.T) {
	client := startServer(t)

	_, err := client.Validate(context.Background(), &ValidateRequest{Fields: []string{"merchant_fax"}})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestVersion_EchoesTraceID(t *testing.T) {
	client := startServer(t)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDMetadataKey, "grpc-trace")
	var header metadata.MD
	got, err := client.Version(ctx, &VersionRequest{}, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, "v9.9.9", got.Version)
	assert.Equal(t, []string{"grpc-trace"}, header.Get(traceIDMetadataKey))
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, CodecName, c.Name())

	b, err := c.Marshal(&VersionResponse{Version: "1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1"}`, string(b))

	var out VersionResponse
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "1", out.Version)
}
