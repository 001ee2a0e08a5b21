// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// updateAccessModal handles keys while a consent request is pending. Only
// the decision keys are accepted.
func (m model) updateAccessModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deciding {
		return m, nil
	}

	plugin := m.pending[0].Plugin
	switch {
	case key.Matches(msg, keys.allow):
		m.deciding = true
		return m, m.cmdDecide(plugin, true)
	case key.Matches(msg, keys.deny):
		m.deciding = true
		return m, m.cmdDecide(plugin, false)
	}
	return m, nil
}

func (m model) onDecided(msg decidedMsg) (tea.Model, tea.Cmd) {
	m.deciding = false
	m.pending = m.plugins.Pending()

	var cmd tea.Cmd
	switch {
	case errors.Is(msg.err, vault.ErrNoPendingRequest):
		m, cmd = m.notify(fmt.Sprintf("The request from %s is no longer pending.", msg.plugin.Name), models.NotificationInfo)
	case msg.err != nil:
		m, cmd = m.fail(msg.err)
	case !msg.approve:
		m, cmd = m.notify(fmt.Sprintf("Vault access denied to %s.", msg.plugin.Name), models.NotificationInfo)
	}

	if m.screen == screenSettings {
		return m, tea.Batch(cmd, m.cmdLoadPluginStates())
	}
	return m, cmd
}

func (m model) viewAccessModal() string {
	req := m.pending[0]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Vault Access Request"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The plugin %s by %s wants to store and access its own\n", titleStyle.Render(req.Plugin.Name), req.Plugin.Author)
	b.WriteString("sensitive data (like API keys) in your encrypted vault.\n\n")
	if req.Plugin.Description != "" {
		b.WriteString(helpStyle.Render(req.Plugin.Description))
		b.WriteString("\n\n")
	}
	b.WriteString("Your other vault entries will not be accessible to this plugin.\n")
	b.WriteString("You can revoke this permission at any time in Settings.\n\n")

	if m.deciding {
		b.WriteString("[Saving decision...]")
	} else {
		b.WriteString("y: allow access │ n: deny")
	}
	if len(m.pending) > 1 {
		fmt.Fprintf(&b, "\n\n%d more requests waiting", len(m.pending)-1)
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(renderStatus(m.status, m.statusKind))
	}

	return overlayBoxStyle.Render(b.String())
}

func (m model) cmdDecide(plugin models.PluginDescriptor, approve bool) tea.Cmd {
	ctx := m.ctx
	plugins := m.plugins

	return func() tea.Msg {
		return decidedMsg{plugin: plugin, approve: approve, err: plugins.Decide(ctx, plugin.ID, approve)}
	}
}
