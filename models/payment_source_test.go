package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentSource_Variants(t *testing.T) {
	tests := []struct {
		src  PaymentSource
		kind PaymentSourceKind
		id   string
	}{
		{CreditCard{Number: "4111111111111111"}, CreditCardSource, "4111111111111111"},
		{BankAccount{AccountNumber: "15378535", RoutingNumber: "244183602"}, BankAccountSource, "15378535"},
		{RawToken("53433"), RawTokenSource, "53433"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.src.Kind())
		assert.Equal(t, tt.id, tt.src.Identifier())
	}
}

func TestPaymentSourceEnvelope_RoundTrip(t *testing.T) {
	for _, src := range []PaymentSource{
		CreditCard{Number: "1"},
		BankAccount{AccountNumber: "2"},
		RawToken("3"),
	} {
		b, err := json.Marshal(WrapPaymentSource(src))
		require.NoError(t, err)

		var env PaymentSourceEnvelope
		require.NoError(t, json.Unmarshal(b, &env))

		got, err := env.Source()
		require.NoError(t, err)
		assert.Equal(t, src, got)
	}
}

func TestPaymentSourceEnvelope_Errors(t *testing.T) {
	tests := []PaymentSourceEnvelope{
		{Type: "cash"},
		{Type: CreditCardSource},
		{Type: BankAccountSource},
		{Type: RawTokenSource},
	}

	for _, env := range tests {
		_, err := env.Source()
		require.ErrorIs(t, err, ErrUnknownPaymentSource)
	}
}
