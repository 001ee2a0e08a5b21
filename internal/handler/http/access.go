// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

// requestAccess returns a bridge token for a granted plugin. Otherwise it
// raises an access request and holds the connection until the user decides
// or the access timeout elapses.
func (h *Handler) requestAccess(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	const fn = "*Handler.requestAccess"
	ctx := r.Context()
	pluginID := chi.URLParam(r, pluginIDParam)

	pv, err := h.plugins.Capability(pluginID)
	if err != nil {
		writeError(w, log, fn, err)
		return
	}
	if !pv.Unlocked() {
		writeError(w, log, fn, vault.ErrVaultLocked)
		return
	}

	granted, err := pv.HasAccess(ctx)
	if err != nil {
		writeError(w, log, fn, err)
		return
	}
	if !granted {
		if granted, err = h.awaitDecision(ctx, pv); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info().Str("plugin_id", pluginID).Msg("plugin disconnected before the decision")
				return
			}
			writeError(w, log, fn, err)
			return
		}
		if !granted {
			writeError(w, log, fn, ErrAccessDenied)
			return
		}
	}

	token, err := utils.GenerateJWTToken(utils.BridgeTokenIssuer, pluginID, h.cfg.TokenDuration, h.signKey)
	if err != nil {
		writeError(w, log, fn, err)
		return
	}
	_, _ = utils.WriteJSON(w, models.AccessResponse{
		Status:    models.BridgeStatusGranted,
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.Time,
	}, http.StatusOK)
}

// awaitDecision raises an access request for pv, or joins the one already
// pending, and waits up to the access timeout. A request still undecided
// when the timeout fires is cancelled; a client that goes away leaves it
// pending for the user and any other waiter.
func (h *Handler) awaitDecision(ctx context.Context, pv service.PluginVault) (bool, error) {
	pluginID := pv.PluginID()

	err := pv.RequestAccess(ctx, nil)
	if err != nil && !errors.Is(err, vault.ErrRequestPending) {
		return false, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, h.cfg.AccessTimeout)
	defer cancel()

	approved, err := h.plugins.Await(waitCtx, pluginID)
	switch {
	case errors.Is(err, vault.ErrNoPendingRequest):
		// decided between RequestAccess and Await
		return pv.HasAccess(ctx)
	case errors.Is(err, context.DeadlineExceeded):
		h.plugins.Cancel(pluginID)
		return false, ErrAccessTimeout
	case errors.Is(err, context.Canceled):
		return false, err
	case err != nil:
		h.plugins.Cancel(pluginID)
		return false, err
	}
	return approved, nil
}
