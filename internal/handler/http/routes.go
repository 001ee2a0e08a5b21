// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/devkit-vault/internal/utils"
)

// URL parameters of the plugin routes.
const (
	pluginIDParam   = "pluginID"
	secretNameParam = "name"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/api/vault/status", h.vaultStatus)

	router.Route("/api/plugins/{"+pluginIDParam+"}", func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/access", h.requestAccess)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/secrets/{"+secretNameParam+"}", h.getSecret)
			r.Put("/secrets/{"+secretNameParam+"}", h.putSecret)
		})
	})

	return router
}

// notFound answers unknown routes and unsupported methods alike so callers
// cannot tell which routes exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
