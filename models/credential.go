// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialEntry is a user-facing password manager record. It is stored as
// the JSON value of a single user key inside the decrypted vault object.
type CredentialEntry struct {
	Title      string   `json:"title"`
	Username   string   `json:"username"`
	Password   string   `json:"password,omitempty"`
	URL        string   `json:"url,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	IsFavorite bool     `json:"isFavorite,omitempty"`
}

// UserSecret pairs a vault entry identifier with its credential record.
type UserSecret struct {
	ID    string          `json:"id"`
	Entry CredentialEntry `json:"entry"`
}
