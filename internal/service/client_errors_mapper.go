// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-soft-descriptor/internal/adapter"
	"github.com/MKhiriev/go-soft-descriptor/internal/app"
	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgUnknownField:
			return validators.ErrUnknownField
		case app.MsgInvalidPaymentSource:
			return ErrInvalidPaymentSource
		case app.MsgPaymentSourceRequired:
			return gateway.ErrNilPaymentSource
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownGatewayAction {
			return gateway.ErrUnknownAction
		}
		// the gateway routes are not mounted when the server runs without one
		return ErrGatewayUnavailable

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrGatewayUnavailable

	case errors.Is(err, adapter.ErrUnprocessable):
		return validators.ErrInvalidSoftDescriptor

	case errors.Is(err, adapter.ErrBadGateway):
		return &gateway.GatewayError{Message: msg}

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgVersionIsNotSpecified {
			return ErrVersionIsNotSpecified
		}
		return fmt.Errorf("server: %w", err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
