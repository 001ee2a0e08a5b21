// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks credential entries before they are sealed into
// the vault and plugin descriptors before the registry accepts them. Field
// names scope a check to the parts of a value an operation touches.
package validators

import "context"

// Validator checks v, or only the named fields of v when fields is not
// empty. Unsupported types are rejected.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
