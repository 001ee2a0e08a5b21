// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Access statuses reported by the plugin bridge.
const (
	BridgeStatusGranted = "granted"
	BridgeStatusDenied  = "denied"
)

// AccessResponse is returned by the bridge once a plugin holds a grant.
type AccessResponse struct {
	Status    string    `json:"status"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// SecretValue is the body of plugin secret reads and writes.
type SecretValue struct {
	Value string `json:"value"`
}

// VaultStatus reports whether the host vault holds a master key.
type VaultStatus struct {
	Locked bool `json:"locked"`
}
