// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway provides payment gateway implementations that accept
// soft descriptors.
//
// BogusGateway never talks to a network. It decides the outcome of every
// operation from the last character of the payment source identifier or
// reference: '1' and '2' force success or failure (or an error, depending
// on the operation), anything else takes the remaining branch. It is meant
// for integration tests and demos of the descriptor pipeline.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

// Options carries per-call settings.
type Options struct {
	// Descriptor, when set, is validated before the call is dispatched.
	Descriptor *models.SoftDescriptor
}

// Gateway is the set of operations a payment gateway supports.
type Gateway interface {
	Authorize(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error)
	Purchase(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error)
	Recurring(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error)
	Credit(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error)
	Refund(ctx context.Context, money int64, reference string, opts Options) (models.GatewayResponse, error)
	Capture(ctx context.Context, money int64, reference string, opts Options) (models.GatewayResponse, error)
	Void(ctx context.Context, reference string, opts Options) (models.GatewayResponse, error)
	Store(ctx context.Context, source models.PaymentSource, opts Options) (models.GatewayResponse, error)
	Unstore(ctx context.Context, reference string, opts Options) (models.GatewayResponse, error)
}

// LastCall is a snapshot of the most recent operation.
type LastCall struct {
	Method   models.GatewayAction
	Request  string
	Response *models.GatewayResponse
	Err      error
}

// BogusGateway is a stateless-by-outcome test gateway. The only state it
// keeps is the LastCall snapshot, guarded by mu.
type BogusGateway struct {
	validator validators.Validator
	logger    *logger.Logger

	mu   sync.Mutex
	last LastCall
}

// NewBogusGateway returns a gateway that validates soft descriptors with
// validator before dispatching.
func NewBogusGateway(validator validators.Validator, logger *logger.Logger) *BogusGateway {
	return &BogusGateway{
		validator: validator,
		logger:    logger,
	}
}

// LastCall returns a copy of the most recent call.
func (g *BogusGateway) LastCall() LastCall {
	g.mu.Lock()
	defer g.mu.Unlock()

	last := g.last
	if last.Response != nil {
		resp := *last.Response
		last.Response = &resp
	}
	return last
}

func (g *BogusGateway) Authorize(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionAuthorize, opts, func(c *callRecord) (models.GatewayResponse, error) {
		if source == nil {
			return models.GatewayResponse{}, ErrNilPaymentSource
		}
		c.request = buildRequest(models.ActionAuthorize, &money, source, "", opts)
		amount := formatAmount(money)

		switch lastChar(source.Identifier()) {
		case forcedSuccess:
			return success(map[string]string{"authorized_amount": amount}, Authorization), nil
		case forcedFailure:
			return failure(map[string]string{"authorized_amount": amount}), nil
		default:
			return models.GatewayResponse{}, &GatewayError{Message: errorMessage(source)}
		}
	})
}

func (g *BogusGateway) Purchase(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionPurchase, opts, func(c *callRecord) (models.GatewayResponse, error) {
		if source == nil {
			return models.GatewayResponse{}, ErrNilPaymentSource
		}
		c.request = buildRequest(models.ActionPurchase, &money, source, "", opts)
		amount := formatAmount(money)

		id := source.Identifier()
		switch {
		case lastChar(id) == forcedSuccess || id == Authorization:
			return success(map[string]string{"paid_amount": amount}, Authorization), nil
		case lastChar(id) == forcedFailure:
			return failure(map[string]string{"paid_amount": amount}), nil
		default:
			return models.GatewayResponse{}, &GatewayError{Message: errorMessage(source)}
		}
	})
}

func (g *BogusGateway) Recurring(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionRecurring, opts, func(_ *callRecord) (models.GatewayResponse, error) {
		return chargeSource(money, source)
	})
}

// Credit pays money out to source. A raw token is treated as a previous
// transaction reference and handled like Refund.
func (g *BogusGateway) Credit(ctx context.Context, money int64, source models.PaymentSource, opts Options) (models.GatewayResponse, error) {
	if token, ok := source.(models.RawToken); ok {
		g.logger.Warn().Msg("credit with a transaction reference is deprecated, use refund")
		return g.Refund(ctx, money, string(token), opts)
	}

	return g.call(ctx, models.ActionCredit, opts, func(_ *callRecord) (models.GatewayResponse, error) {
		return chargeSource(money, source)
	})
}

func (g *BogusGateway) Refund(ctx context.Context, money int64, reference string, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionRefund, opts, func(_ *callRecord) (models.GatewayResponse, error) {
		return settleReference(money, reference, RefundErrorMessage)
	})
}

func (g *BogusGateway) Capture(ctx context.Context, money int64, reference string, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionCapture, opts, func(_ *callRecord) (models.GatewayResponse, error) {
		return settleReference(money, reference, CaptureErrorMessage)
	})
}

func (g *BogusGateway) Void(ctx context.Context, reference string, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionVoid, opts, func(c *callRecord) (models.GatewayResponse, error) {
		c.request = buildRequest(models.ActionVoid, nil, nil, reference, opts)

		switch lastChar(reference) {
		case forcedSuccess:
			return models.GatewayResponse{}, &GatewayError{Message: VoidErrorMessage}
		case forcedFailure:
			return failure(map[string]string{"authorization": reference}), nil
		default:
			return success(map[string]string{"authorization": reference}, ""), nil
		}
	})
}

func (g *BogusGateway) Store(ctx context.Context, source models.PaymentSource, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionStore, opts, func(_ *callRecord) (models.GatewayResponse, error) {
		if source == nil {
			return models.GatewayResponse{}, ErrNilPaymentSource
		}

		switch lastChar(source.Identifier()) {
		case forcedSuccess:
			return success(map[string]string{"billingid": "1"}, Authorization), nil
		case forcedFailure:
			return failure(map[string]string{"billingid": ""}), nil
		default:
			return models.GatewayResponse{}, &GatewayError{Message: errorMessage(source)}
		}
	})
}

func (g *BogusGateway) Unstore(ctx context.Context, reference string, opts Options) (models.GatewayResponse, error) {
	return g.call(ctx, models.ActionUnstore, opts, func(_ *callRecord) (models.GatewayResponse, error) {
		switch lastChar(reference) {
		case forcedSuccess:
			return success(map[string]string{}, ""), nil
		case forcedFailure:
			return failure(map[string]string{}), nil
		default:
			return models.GatewayResponse{}, &GatewayError{Message: UnstoreErrorMessage}
		}
	})
}

// callRecord collects what an operation wants remembered in LastCall.
type callRecord struct {
	request string
}

// call validates the optional descriptor, runs fn and stores the outcome
// as the last call.
func (g *BogusGateway) call(ctx context.Context, method models.GatewayAction, opts Options, fn func(*callRecord) (models.GatewayResponse, error)) (models.GatewayResponse, error) {
	log := logger.FromContext(ctx)
	rec := &callRecord{}

	var (
		resp models.GatewayResponse
		err  error
	)
	if opts.Descriptor != nil {
		err = g.validator.Validate(ctx, opts.Descriptor)
	}
	if err == nil {
		resp, err = fn(rec)
	}

	last := LastCall{Method: method, Request: rec.request, Err: err}
	if err == nil {
		last.Response = &resp
	}

	g.mu.Lock()
	g.last = last
	g.mu.Unlock()

	if err != nil {
		log.Debug().Str("method", string(method)).Err(err).Msg("bogus gateway call failed")
		return models.GatewayResponse{}, err
	}

	log.Debug().Str("method", string(method)).Bool("success", resp.Success).Msg("bogus gateway call")
	return resp, nil
}

const (
	forcedSuccess = '1'
	forcedFailure = '2'
)

func chargeSource(money int64, source models.PaymentSource) (models.GatewayResponse, error) {
	if source == nil {
		return models.GatewayResponse{}, ErrNilPaymentSource
	}
	amount := formatAmount(money)

	switch lastChar(source.Identifier()) {
	case forcedSuccess:
		return success(map[string]string{"paid_amount": amount}, ""), nil
	case forcedFailure:
		return failure(map[string]string{"paid_amount": amount}), nil
	default:
		return models.GatewayResponse{}, &GatewayError{Message: errorMessage(source)}
	}
}

// settleReference implements refund and capture: '1' raises, '2' declines,
// anything else succeeds.
func settleReference(money int64, reference, errMessage string) (models.GatewayResponse, error) {
	amount := formatAmount(money)

	switch lastChar(reference) {
	case forcedSuccess:
		return models.GatewayResponse{}, &GatewayError{Message: errMessage}
	case forcedFailure:
		return failure(map[string]string{"paid_amount": amount}), nil
	default:
		return success(map[string]string{"paid_amount": amount}, ""), nil
	}
}

func success(params map[string]string, authorization string) models.GatewayResponse {
	return models.GatewayResponse{
		Success:       true,
		Message:       SuccessMessage,
		Params:        params,
		Authorization: authorization,
		Test:          true,
	}
}

func failure(params map[string]string) models.GatewayResponse {
	params["error"] = FailureMessage
	return models.GatewayResponse{
		Success: false,
		Message: FailureMessage,
		Params:  params,
		Test:    true,
	}
}

func errorMessage(source models.PaymentSource) string {
	switch source.Kind() {
	case models.BankAccountSource:
		return CheckErrorMessage
	case models.RawTokenSource:
		return TokenErrorMessage
	default:
		return ErrorMessage
	}
}

func lastChar(s string) byte {
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

// formatAmount renders minor units as a decimal string: 1000 -> "10.00".
func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseAction maps a transport action name onto a GatewayAction.
func ParseAction(s string) (models.GatewayAction, error) {
	action := models.GatewayAction(strings.ToLower(strings.TrimSpace(s)))
	switch action {
	case models.ActionAuthorize, models.ActionPurchase, models.ActionRecurring, models.ActionCredit,
		models.ActionRefund, models.ActionCapture, models.ActionVoid, models.ActionStore, models.ActionUnstore:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
