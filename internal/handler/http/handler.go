// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/rand"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
)

const signKeySize = 32

// Handler serves the plugin bridge API.
type Handler struct {
	session service.SessionService
	plugins service.PluginAccessService

	// signKey signs bridge tokens. It is generated per process so tokens
	// never outlive the host application.
	signKey []byte
	cfg     config.Bridge
	limiter *pluginLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Bridge, logger *logger.Logger) (*Handler, error) {
	signKey := make([]byte, signKeySize)
	if _, err := rand.Read(signKey); err != nil {
		return nil, fmt.Errorf("generate bridge sign key: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		session: services.Session,
		plugins: services.Plugins,
		signKey: signKey,
		cfg:     cfg,
		limiter: newPluginLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:  logger,
	}, nil
}
