// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a plugin bridge credential.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for the standard claim set. The subject claim carries the plugin ID.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as the bearer value.
	SignedString string `json:"-"`

	// PluginID is the parsed subject claim.
	PluginID string `json:"-"`
}

// GetPluginID returns the subject claim.
func (t *Token) GetPluginID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting PluginID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
