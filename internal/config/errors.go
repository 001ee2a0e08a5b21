// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty path
	// for the selected driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates an unsupported cipher or KDF.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidVaultConfigs indicates an auto-lock timeout outside the
	// selectable options.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidBridgeConfigs indicates a non-loopback bridge address or
	// negative limits and durations.
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
)
