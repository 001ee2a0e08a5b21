// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/config"
	handler "github.com/MKhiriev/devkit-vault/internal/handler/http"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/plugins"
	"github.com/MKhiriev/devkit-vault/internal/server"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/internal/tui"
	"github.com/MKhiriev/devkit-vault/internal/workers"
	"github.com/MKhiriev/devkit-vault/models"
)

// App owns every long-lived component of the process.
type App struct {
	storages *store.Storages
	services *service.Services
	workers  *workers.Workers

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens storage and builds the UI worker, plus the bridge worker when
// cfg.Bridge is enabled.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := newApp(ctx, storages, cfg, buildInfo, tui.Deps{}, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}
	return app, nil
}

// newApp wires the application over already opened storages. ui may preset
// Events and Clipboard; its service fields are always overwritten.
func newApp(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, ui tui.Deps, logger *logger.Logger) (*App, error) {
	if ui.Events == nil {
		ui.Events = tui.NewEvents()
	}
	registry, err := plugins.NewBuiltinRegistry(ui.Events, logger.WithComponent("plugins"))
	if err != nil {
		return nil, fmt.Errorf("register plugins: %w", err)
	}

	services, err := service.NewServices(ctx, service.Deps{
		Storages: storages,
		Catalog:  registry,
		Notifier: ui.Events,
		Prompter: ui.Events,
	}, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	ui.Session = services.Session
	ui.Passwords = services.Passwords
	ui.Plugins = services.Plugins
	ui.Consumers = registry.VaultConsumers()
	ui.KeyPlugins = registry
	ui.BuildInfo = buildInfo
	terminal, err := tui.New(ui, logger)
	if err != nil {
		services.Close()
		return nil, fmt.Errorf("create tui: %w", err)
	}

	w := workers.NewWorkers(logger.WithComponent("workers"), terminal)
	if cfg.Bridge.Enabled() {
		bridge, err := newBridge(services, cfg.Bridge, logger)
		if err != nil {
			services.Close()
			return nil, err
		}
		w.Add(bridge)
	} else {
		logger.Info().Msg("plugin bridge disabled")
	}

	return &App{
		storages: storages,
		services: services,
		workers:  w,
		logger:   logger,
	}, nil
}

func newBridge(services *service.Services, cfg config.Bridge, logger *logger.Logger) (server.Server, error) {
	bridgeLogger := logger.WithComponent("bridge")

	h, err := handler.NewHandler(services, cfg, bridgeLogger)
	if err != nil {
		return nil, fmt.Errorf("create bridge handler: %w", err)
	}
	srv, err := server.NewServer(h.Init(), cfg.Address, bridgeLogger)
	if err != nil {
		return nil, fmt.Errorf("create bridge server: %w", err)
	}
	return srv, nil
}

// Run blocks until the UI exits or ctx is done. The vault is locked and
// storage closed before returning.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info().Msg("devkit vault started")
	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("run workers: %w", err)
	}
	a.logger.Info().Msg("devkit vault stopped")
	return nil
}

func (a *App) close() {
	a.services.Close()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("failed to close storages")
	}
}
