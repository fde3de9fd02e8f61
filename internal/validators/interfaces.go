// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// Rules are declared with go-playground/validator struct tags on the models
// (`validate:"required,max=500"`). Failures are reported as *[Error] values
// whose message names the JSON fields that broke a rule, so handlers can
// return them to the client unchanged.
package validators

import "context"

// Validator validates request payloads.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
