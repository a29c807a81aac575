// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business-rule validators of the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - SoftDescriptorValidator: the Salem / PNS soft descriptor rule set.
//     Its outcomes are field-scoped messages collected in [models.FieldErrors];
//     invalid input is reported, never panicked on.
//
// Usage patterns:
//  1. Call Check to get the full set of field messages for a descriptor.
//  2. Inject a Validator into services or handlers and call Validate with
//     context, value, and optional field names; an invalid descriptor comes
//     back as a *DescriptorError.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
