// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server handlers and
// the client adapter.
//
// Handlers write them into error response bodies; the adapter matches them
// to turn a transport error back into a business error. Keeping them in one
// place keeps both sides in agreement.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or does not match the request schema.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnknownField is returned when a field-scoped validation names a
	// field the rule set does not know.
	MsgUnknownField = "unknown field for validation"

	// MsgUnknownGatewayAction is returned for an action outside the gateway
	// operation set.
	MsgUnknownGatewayAction = "unknown gateway action"

	// MsgInvalidPaymentSource is returned when a gateway request carries a
	// payment source of unknown type or without its body.
	MsgInvalidPaymentSource = "invalid payment source"

	// MsgPaymentSourceRequired is returned when an operation that charges a
	// payment source is called without one.
	MsgPaymentSourceRequired = "payment source is required"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"
)
