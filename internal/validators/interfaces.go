// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the local store.
//
// A [Validator] validates a whole value or only the named fields of it, so
// forms can check one input at a time and the save path can check all of
// them. Failures are sentinel errors from this package, wrapped with the
// offending field name.
package validators

import "context"

// Validator validates a value. With no field names every known field is
// checked; otherwise only the listed ones, in order.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
