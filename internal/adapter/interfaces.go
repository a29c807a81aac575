// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// descriptor server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// descriptor server.
type ServerAdapter interface {
	// ValidateDescriptor asks the server to validate d. A descriptor the
	// server rejects comes back as a result with Valid == false and a nil
	// error; errors mean the request itself failed.
	ValidateDescriptor(ctx context.Context, d models.SoftDescriptor) (models.ValidationResult, error)

	// Gateway runs action on the server's bogus gateway.
	Gateway(ctx context.Context, action models.GatewayAction, req models.GatewayRequest) (models.GatewayResponse, error)

	// GetServerVersion returns the version string the server reports.
	GetServerVersion(ctx context.Context) (string, error)
}
