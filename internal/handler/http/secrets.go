// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/models"
)

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	const fn = "*Handler.getSecret"

	pv, err := h.capabilityFromContext(r)
	if err != nil {
		writeError(w, log, fn, err)
		return
	}

	value, found, err := pv.GetSecret(r.Context(), chi.URLParam(r, secretNameParam))
	if err != nil {
		writeError(w, log, fn, err)
		return
	}
	if !found {
		writeError(w, log, fn, ErrSecretNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.SecretValue{Value: value}, http.StatusOK)
}

func (h *Handler) putSecret(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	const fn = "*Handler.putSecret"

	var body models.SecretValue
	if err := utils.DecodeJSON(r.Body, &body); err != nil {
		writeError(w, log, fn, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}
	if body.Value == "" {
		writeError(w, log, fn, ErrEmptySecret)
		return
	}

	pv, err := h.capabilityFromContext(r)
	if err != nil {
		writeError(w, log, fn, err)
		return
	}
	if err := pv.PutSecret(r.Context(), chi.URLParam(r, secretNameParam), body.Value); err != nil {
		writeError(w, log, fn, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// capabilityFromContext returns the capability of the plugin authenticated
// by [Handler.auth].
func (h *Handler) capabilityFromContext(r *http.Request) (service.PluginVault, error) {
	pluginID, ok := utils.GetPluginIDFromContext(r.Context())
	if !ok {
		return nil, ErrInvalidToken
	}
	return h.plugins.Capability(pluginID)
}
