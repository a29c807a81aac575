package models

import (
	"errors"
	"fmt"
	"strings"
)

// PaymentSourceKind names the variant of a [PaymentSource].
type PaymentSourceKind string

const (
	CreditCardSource  PaymentSourceKind = "credit_card"
	BankAccountSource PaymentSourceKind = "bank_account"
	RawTokenSource    PaymentSourceKind = "token"
)

// ErrUnknownPaymentSource is returned when a payload names no known variant.
var ErrUnknownPaymentSource = errors.New("unknown payment source")

// PaymentSource is the closed set of instruments a gateway can charge.
// Implementations are CreditCard, BankAccount and RawToken.
type PaymentSource interface {
	// Kind reports which variant this is.
	Kind() PaymentSourceKind

	// Identifier returns the normalized number the gateway dispatches on.
	Identifier() string

	paymentSource()
}

// CreditCard is a card-like source identified by its PAN.
type CreditCard struct {
	Number    string `json:"number"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Month     int    `json:"month,omitempty"`
	Year      int    `json:"year,omitempty"`
	CVV       string `json:"cvv,omitempty"`
}

func (CreditCard) Kind() PaymentSourceKind { return CreditCardSource }
func (c CreditCard) Identifier() string    { return c.Number }
func (CreditCard) paymentSource()          {}

// BankAccount is an ACH source identified by its account number.
type BankAccount struct {
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number,omitempty"`
	AccountHolder string `json:"account_holder,omitempty"`
	AccountType   string `json:"account_type,omitempty"`
}

func (BankAccount) Kind() PaymentSourceKind { return BankAccountSource }
func (b BankAccount) Identifier() string    { return b.AccountNumber }
func (BankAccount) paymentSource()          {}

// RawToken is an opaque stored-billing reference.
type RawToken string

func (RawToken) Kind() PaymentSourceKind { return RawTokenSource }
func (t RawToken) Identifier() string    { return string(t) }
func (RawToken) paymentSource()          {}

// PaymentSourceEnvelope is the JSON form of a PaymentSource:
//
//	{"type":"credit_card","credit_card":{"number":"4111111111111111"}}
//	{"type":"bank_account","bank_account":{"account_number":"15378535"}}
//	{"type":"token","token":"53433"}
type PaymentSourceEnvelope struct {
	Type        PaymentSourceKind `json:"type"`
	CreditCard  *CreditCard       `json:"credit_card,omitempty"`
	BankAccount *BankAccount      `json:"bank_account,omitempty"`
	Token       *string           `json:"token,omitempty"`
}

// WrapPaymentSource builds the envelope for src.
func WrapPaymentSource(src PaymentSource) PaymentSourceEnvelope {
	env := PaymentSourceEnvelope{Type: src.Kind()}
	switch v := src.(type) {
	case CreditCard:
		env.CreditCard = &v
	case *CreditCard:
		env.CreditCard = v
	case BankAccount:
		env.BankAccount = &v
	case *BankAccount:
		env.BankAccount = v
	case RawToken:
		s := string(v)
		env.Token = &s
	}
	return env
}

// Source returns the variant the envelope carries.
func (e PaymentSourceEnvelope) Source() (PaymentSource, error) {
	switch PaymentSourceKind(strings.ToLower(string(e.Type))) {
	case CreditCardSource:
		if e.CreditCard == nil {
			return nil, fmt.Errorf("%w: missing credit_card body", ErrUnknownPaymentSource)
		}
		return *e.CreditCard, nil
	case BankAccountSource:
		if e.BankAccount == nil {
			return nil, fmt.Errorf("%w: missing bank_account body", ErrUnknownPaymentSource)
		}
		return *e.BankAccount, nil
	case RawTokenSource:
		if e.Token == nil {
			return nil, fmt.Errorf("%w: missing token", ErrUnknownPaymentSource)
		}
		return RawToken(*e.Token), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentSource, e.Type)
	}
}
