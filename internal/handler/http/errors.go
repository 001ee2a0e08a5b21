// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the bridge middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken is returned for tokens with a bad signature, issuer
	// or expiry.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTokenPluginMismatch is returned when the token subject differs
	// from the plugin in the URL.
	ErrTokenPluginMismatch = errors.New("token was issued to another plugin")

	// ErrAccessRevoked is returned when a valid token is presented after the
	// grant has been revoked.
	ErrAccessRevoked = errors.New("vault access was revoked")

	ErrAccessDenied    = errors.New("vault access denied by the user")
	ErrAccessTimeout   = errors.New("timed out waiting for the user decision")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrEmptySecret     = errors.New("secret value is empty")
	ErrTooManyRequests = errors.New("too many requests")
)
