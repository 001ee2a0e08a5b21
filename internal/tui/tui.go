// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/plugins"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators of the terminal UI.
type Deps struct {
	Session   service.SessionService
	Passwords service.PasswordService
	Plugins   service.PluginAccessService

	// Consumers are the plugins listed on the settings screen.
	Consumers []models.PluginDescriptor

	// KeyPlugins finds the consumers configured with an API key. Without it
	// the settings screen offers no key entry.
	KeyPlugins KeyPluginLookup

	Events    *Events
	BuildInfo models.AppBuildInfo

	// Clipboard defaults to the system clipboard.
	Clipboard func(text string) error
}

// KeyPluginLookup is implemented by *plugins.Registry.
type KeyPluginLookup interface {
	KeyConsumer(id string) (plugins.KeyConsumer, bool)
}

// TUI is the host user interface. It is run as a worker next to the bridge.
type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, logger *logger.Logger) (*TUI, error) {
	if deps.Session == nil || deps.Passwords == nil || deps.Plugins == nil {
		return nil, ErrMissingService
	}
	if deps.Events == nil {
		deps.Events = NewEvents()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}
	return &TUI{deps: deps, logger: logger.WithComponent("tui")}, nil
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newModel(ctx, t.deps, t.logger)
	_, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	t.logger.Info().Msg("tui closed by user")
	return nil
}
