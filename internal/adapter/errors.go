// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from bridge status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("plugin unauthorized")
	ErrForbidden           = errors.New("vault access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTimeout      = errors.New("user did not answer the access request in time")
	ErrConflict            = errors.New("conflict")
	ErrVaultLocked         = errors.New("vault is locked")
	ErrTooManyRequests     = errors.New("rate limited by the bridge")
	ErrInternalServerError = errors.New("bridge internal error")

	// ErrNoToken is returned by secret operations before RequestAccess has
	// obtained a token.
	ErrNoToken = errors.New("no bridge token, request access first")
)
