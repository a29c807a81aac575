package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveValidation(t *testing.T) {
	m := New()

	m.ObserveValidation("salem", nil)
	m.ObserveValidation("salem", []Violation{
		{Field: "merchant_name", Kind: "MissingMerchantName"},
		{Field: "merchant_phone", Kind: "InvalidPhoneFormat"},
	})
	m.ObserveValidation("pns", []Violation{{Field: "merchant_name", Kind: "MissingMerchantName"}})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationsTotal.WithLabelValues("salem", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationsTotal.WithLabelValues("salem", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationsTotal.WithLabelValues("pns", "invalid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.violationsTotal.WithLabelValues("merchant_name", "MissingMerchantName")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violationsTotal.WithLabelValues("merchant_phone", "InvalidPhoneFormat")))
}

func TestObserveGatewayCall(t *testing.T) {
	m := New()

	m.ObserveGatewayCall("purchase", OutcomeSuccess)
	m.ObserveGatewayCall("purchase", OutcomeSuccess)
	m.ObserveGatewayCall("void", OutcomeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("purchase", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("void", OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveValidation("salem", []Violation{{Field: "f", Kind: "k"}})
		m.ObserveGatewayCall("void", OutcomeFailure)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := m.Middleware(next)
	require.NotNil(t, h)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/api/gateway/{action}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	for _, action := range []string{"purchase", "void"} {
		req := httptest.NewRequest(http.MethodPost, "/api/gateway/"+action, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.requestCount.WithLabelValues(http.MethodPost, "/api/gateway/{action}", "422"),
	))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveValidation("pns", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `soft_descriptor_validations_total{result="valid",scheme="pns"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
