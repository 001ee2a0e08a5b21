// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/utils"
)

// auth enforces bridge token authentication on plugin secret routes.
//
// The bearer token must be signed with the process key, carry the bridge
// issuer and name the plugin of the URL as its subject. The grant is looked
// up again on every request, so a revoke invalidates outstanding tokens.
// On success the plugin ID is stored under [utils.PluginIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		const fn = "*Handler.auth"

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, log, fn, ErrEmptyAuthorizationHeader)
			return
		}
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, log, fn, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.signKey, utils.BridgeTokenIssuer)
		if err != nil {
			writeError(w, log, fn, fmt.Errorf("%w: %w", ErrInvalidToken, err))
			return
		}

		pluginID := chi.URLParam(r, pluginIDParam)
		if token.PluginID != pluginID {
			writeError(w, log, fn, ErrTokenPluginMismatch)
			return
		}

		ctx := r.Context()
		pv, err := h.plugins.Capability(pluginID)
		if err != nil {
			writeError(w, log, fn, err)
			return
		}
		granted, err := pv.HasAccess(ctx)
		if err != nil {
			writeError(w, log, fn, err)
			return
		}
		if !granted {
			writeError(w, log, fn, ErrAccessRevoked)
			return
		}

		pluginLog := log.With().Str("plugin_id", pluginID).Logger()
		ctx = utils.WithPluginID(pluginLog.WithContext(ctx), pluginID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
