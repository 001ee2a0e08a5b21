// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/internal/vault"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidToken:               http.StatusUnauthorized,
	ErrTokenPluginMismatch:        http.StatusForbidden,
	ErrAccessRevoked:              http.StatusForbidden,
	ErrAccessDenied:               http.StatusForbidden,
	ErrAccessTimeout:              http.StatusRequestTimeout,
	ErrSecretNotFound:             http.StatusNotFound,
	ErrEmptySecret:                http.StatusBadRequest,
	ErrTooManyRequests:            http.StatusTooManyRequests,

	service.ErrUnknownPlugin:       http.StatusNotFound,
	service.ErrNoVaultAccess:       http.StatusForbidden,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	vault.ErrVaultLocked:       http.StatusLocked,
	vault.ErrPermissionDenied:  http.StatusForbidden,
	vault.ErrInvalidPluginID:   http.StatusBadRequest,
	vault.ErrInvalidSecretName: http.StatusBadRequest,
	vault.ErrRequestPending:    http.StatusConflict,
	vault.ErrStaleWrite:        http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server errors are
// reported with the generic status text only.
func writeError(w http.ResponseWriter, log *logger.Logger, fn string, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
