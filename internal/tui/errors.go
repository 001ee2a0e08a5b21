// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/vault"
)

var ErrMissingService = errors.New("tui: missing service")

// humanizeError turns service errors into a single line for the status bar.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrAuthenticationFailed):
		return "Incorrect master password."
	case errors.Is(err, vault.ErrVaultLocked):
		return "The vault is locked."
	case errors.Is(err, vault.ErrStaleWrite):
		return "The vault changed on disk. Reload and try again."
	case errors.Is(err, service.ErrInvalidDataProvided):
		return strings.TrimPrefix(err.Error(), service.ErrInvalidDataProvided.Error()+": ")
	default:
		return err.Error()
	}
}
