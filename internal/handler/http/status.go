// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/models"
)

func (h *Handler) vaultStatus(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.VaultStatus{Locked: h.session.Locked()}, http.StatusOK)
}
