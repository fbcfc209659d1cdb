// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note input before it leaves the client.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule of the value's type is checked; otherwise only the named
// ones, which lets callers validate the merged result of a partial update.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
