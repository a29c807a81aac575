package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/metrics"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGatewaySvc(m *metrics.Metrics) (GatewayService, *gateway.BogusGateway) {
	gw := gateway.NewBogusGateway(validators.NewSoftDescriptorValidator(), logger.Nop())
	return NewGatewayService(gw, m, logger.Nop()), gw
}

func cardEnvelope(number string) *models.PaymentSourceEnvelope {
	env := models.WrapPaymentSource(models.CreditCard{Number: number})
	return &env
}

func TestGatewayService_DispatchesEveryAction(t *testing.T) {
	svc, gw := newTestGatewaySvc(nil)
	ctx := context.Background()

	tests := []struct {
		action models.GatewayAction
		req    models.GatewayRequest
	}{
		{models.ActionAuthorize, models.GatewayRequest{Amount: 100, Source: cardEnvelope("1")}},
		{models.ActionPurchase, models.GatewayRequest{Amount: 100, Source: cardEnvelope("1")}},
		{models.ActionRecurring, models.GatewayRequest{Amount: 100, Source: cardEnvelope("1")}},
		{models.ActionCredit, models.GatewayRequest{Amount: 100, Source: cardEnvelope("1")}},
		{models.ActionRefund, models.GatewayRequest{Amount: 100, Reference: "3"}},
		{models.ActionCapture, models.GatewayRequest{Amount: 100, Reference: "3"}},
		{models.ActionVoid, models.GatewayRequest{Reference: "3"}},
		{models.ActionStore, models.GatewayRequest{Source: cardEnvelope("1")}},
		{models.ActionUnstore, models.GatewayRequest{Reference: "1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			resp, err := svc.Execute(ctx, tt.action, tt.req)
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.action, gw.LastCall().Method)
		})
	}
}

func TestGatewayService_UnknownAction(t *testing.T) {
	svc, _ := newTestGatewaySvc(nil)

	_, err := svc.Execute(context.Background(), models.GatewayAction("settle"), models.GatewayRequest{})

	require.ErrorIs(t, err, gateway.ErrUnknownAction)
}

func TestGatewayService_InvalidPaymentSource(t *testing.T) {
	svc, _ := newTestGatewaySvc(nil)
	req := models.GatewayRequest{Amount: 1, Source: &models.PaymentSourceEnvelope{Type: "cash"}}

	_, err := svc.Execute(context.Background(), models.ActionPurchase, req)

	require.ErrorIs(t, err, ErrInvalidPaymentSource)
	assert.ErrorIs(t, err, models.ErrUnknownPaymentSource)
}

func TestGatewayService_GatewayErrorIsWrapped(t *testing.T) {
	svc, _ := newTestGatewaySvc(nil)

	_, err := svc.Execute(context.Background(), models.ActionAuthorize, models.GatewayRequest{Amount: 1, Source: cardEnvelope("3")})

	require.ErrorIs(t, err, gateway.ErrGateway)
	assert.Contains(t, err.Error(), "gateway authorize")
}

func TestGatewayService_InvalidDescriptorRejected(t *testing.T) {
	svc, _ := newTestGatewaySvc(nil)
	req := models.GatewayRequest{
		Amount:     1,
		Source:     cardEnvelope("1"),
		Descriptor: &models.SoftDescriptor{MerchantID: "123456", MerchantName: "Merchan"},
	}

	_, err := svc.Execute(context.Background(), models.ActionPurchase, req)

	var descErr *validators.DescriptorError
	require.ErrorAs(t, err, &descErr)
	assert.True(t, descErr.Errors.Has(validators.FieldProductDescription))
}

func TestGatewayService_Unavailable(t *testing.T) {
	svc := NewGatewayService(nil, nil, logger.Nop())

	_, err := svc.Execute(context.Background(), models.ActionVoid, models.GatewayRequest{Reference: "3"})

	require.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestGatewayService_RecordsOutcomes(t *testing.T) {
	m := metrics.New()
	svc, _ := newTestGatewaySvc(m)
	ctx := context.Background()

	_, _ = svc.Execute(ctx, models.ActionPurchase, models.GatewayRequest{Amount: 1, Source: cardEnvelope("1")})
	_, _ = svc.Execute(ctx, models.ActionPurchase, models.GatewayRequest{Amount: 1, Source: cardEnvelope("2")})
	_, _ = svc.Execute(ctx, models.ActionVoid, models.GatewayRequest{Reference: "1"})

	expected := `
# HELP soft_descriptor_gateway_calls_total Bogus gateway calls by action and outcome
# TYPE soft_descriptor_gateway_calls_total counter
soft_descriptor_gateway_calls_total{action="purchase",outcome="failure"} 1
soft_descriptor_gateway_calls_total{action="purchase",outcome="success"} 1
soft_descriptor_gateway_calls_total{action="void",outcome="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "soft_descriptor_gateway_calls_total"))
}
