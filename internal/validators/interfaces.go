// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// Every validator implements [Validator]. Callers may pass field names to
// restrict validation to a subset of fields; without them a default set
// for the value's type is checked. The first failing rule is returned as one
// of the sentinel errors of this package.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
