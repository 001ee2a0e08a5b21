// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the plugin bridge. An out-of-process
// plugin uses [BridgeClient] to obtain vault access from the host and then
// read and write the secrets of its own namespace.
//
// Bridge status codes are mapped to the sentinel errors in errors.go, so
// callers can use [errors.Is] (e.g. [ErrVaultLocked] for 423, [ErrForbidden]
// for a denied or revoked grant).
package adapter

import (
	"context"

	"github.com/MKhiriev/devkit-vault/models"
)

// BridgeClient talks to the host for a single plugin.
type BridgeClient interface {
	// PluginID is the plugin this client acts for.
	PluginID() string

	// Status reports whether the host vault is locked.
	Status(ctx context.Context) (models.VaultStatus, error)

	// RequestAccess asks the host for vault access and blocks until the user
	// decides. The returned token is kept for the secret operations. ctx
	// should allow for the time the user needs to answer.
	RequestAccess(ctx context.Context) (models.AccessResponse, error)

	// GetSecret reads the plugin secret name. A missing secret returns
	// [ErrNotFound].
	GetSecret(ctx context.Context, name string) (string, error)

	// PutSecret stores value under the plugin secret name.
	PutSecret(ctx context.Context, name, value string) error
}
