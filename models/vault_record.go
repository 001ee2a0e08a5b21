// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Salt is the base64 (standard encoding) representation of the random bytes
// used to derive the master key. It is persisted in plaintext.
type Salt string

// VaultRecord is the persisted unit of the encrypted vault.
//
// IV and Ciphertext are base64 strings. Version grows by one on every
// successful write and is used for optimistic concurrency control; it is
// also bound as associated data of the AEAD seal.
type VaultRecord struct {
	IV         string    `json:"iv"`
	Ciphertext string    `json:"ciphertext"`
	Algorithm  string    `json:"alg,omitempty"`
	Version    int64     `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
}
