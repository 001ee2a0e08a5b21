// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/devkit-vault/internal/plugins"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsState keeps the cursor over rows: 0 is the auto-lock timeout,
// the rest are vault consumers in registration order.
type settingsState struct {
	cursor        int
	states        map[string]models.AccessState
	keys          map[string]bool
	confirmRevoke bool
	busy          bool

	editingKey bool
	keyInput   textinput.Model
}

func newKeyInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "API key"
	input.CharLimit = 512
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()
	return input
}

func (m model) selectedKeyPlugin() (plugins.KeyConsumer, bool) {
	plugin, ok := m.selectedConsumer()
	if !ok || m.keyPlugins == nil {
		return nil, false
	}
	return m.keyPlugins.KeyConsumer(plugin.ID)
}

func (m model) selectedConsumer() (models.PluginDescriptor, bool) {
	i := m.settings.cursor - 1
	if i < 0 || i >= len(m.consumers) {
		return models.PluginDescriptor{}, false
	}
	return m.consumers[i], true
}

func (m model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.settings.busy {
		return m, nil
	}

	if m.settings.editingKey {
		return m.updateKeyInput(keyMsg)
	}

	if m.settings.confirmRevoke {
		m.settings.confirmRevoke = false
		if plugin, ok := m.selectedConsumer(); ok && key.Matches(keyMsg, keys.allow) {
			m.settings.busy = true
			return m, m.cmdRevoke(plugin)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.screen = screenList
		m.settings = settingsState{}
		return m, m.cmdLoadEntries(m.list.query)
	case key.Matches(keyMsg, keys.up):
		if m.settings.cursor > 0 {
			m.settings.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.cursor < len(m.consumers) {
			m.settings.cursor++
		}
	case key.Matches(keyMsg, keys.cycle) && m.settings.cursor == 0:
		m.settings.busy = true
		return m, m.cmdSetAutoLock(m.session.AutoLockTimeout().Next())
	case key.Matches(keyMsg, keys.setKey):
		if _, ok := m.selectedKeyPlugin(); ok {
			m.settings.editingKey = true
			m.settings.keyInput = newKeyInput()
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.revoke):
		if plugin, ok := m.selectedConsumer(); ok && m.settings.states[plugin.ID] == models.AccessGranted {
			m.settings.confirmRevoke = true
		}
	case key.Matches(keyMsg, keys.lock):
		return m.lockNow()
	}
	return m, nil
}

func (m model) updateKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.settings.editingKey = false
		m.settings.keyInput = textinput.Model{}
		return m, nil
	case key.Matches(msg, keys.enter):
		plugin, ok := m.selectedConsumer()
		if !ok {
			return m, nil
		}
		apiKey := strings.TrimSpace(m.settings.keyInput.Value())
		if apiKey == "" {
			return m.notify("API key is required.", models.NotificationError)
		}
		m.settings.editingKey = false
		m.settings.keyInput = textinput.Model{}
		m.settings.busy = true
		return m, m.cmdConfigureKey(plugin, apiKey)
	}

	var cmd tea.Cmd
	m.settings.keyInput, cmd = m.settings.keyInput.Update(msg)
	return m, cmd
}

func (m model) onPluginStates(msg pluginStatesMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenSettings {
		return m, nil
	}
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.settings.states = msg.states
	m.settings.keys = msg.keys
	return m, nil
}

func (m model) onKeyConfigured(msg keyConfiguredMsg) (tea.Model, tea.Cmd) {
	m.settings.busy = false

	var (
		next model
		cmd  tea.Cmd
	)
	switch {
	case errors.Is(msg.err, plugins.ErrAwaitingConsent):
		next, cmd = m.notify(fmt.Sprintf("Approve vault access for %s to save its API key.", msg.plugin.Name), models.NotificationInfo)
	case errors.Is(msg.err, vault.ErrRequestPending):
		return m.notify(fmt.Sprintf("%s is already waiting for vault access. Decide that request first.", msg.plugin.Name), models.NotificationInfo)
	case msg.err != nil:
		return m.fail(msg.err)
	default:
		next, cmd = m.notify(fmt.Sprintf("API key saved for %s.", msg.plugin.Name), models.NotificationSuccess)
	}
	if next.screen != screenSettings {
		return next, cmd
	}
	return next, tea.Batch(cmd, next.cmdLoadPluginStates())
}

func (m model) onAutoLockSet(msg autoLockSetMsg) (tea.Model, tea.Cmd) {
	m.settings.busy = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	return m.notify("Auto-lock set to "+msg.timeout.String()+".", models.NotificationSuccess)
}

func (m model) onRevoked(msg revokedMsg) (tea.Model, tea.Cmd) {
	m.settings.busy = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m, cmd := m.notify(fmt.Sprintf("Vault access revoked for %s.", msg.plugin.Name), models.NotificationSuccess)
	return m, tea.Batch(cmd, m.cmdLoadPluginStates())
}

func (m model) viewSettings() string {
	var b strings.Builder

	row := func(i int, text string) {
		if i == m.settings.cursor {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(text))
		} else {
			b.WriteString("  ")
			b.WriteString(text)
		}
		b.WriteString("\n")
	}

	row(0, fmt.Sprintf("Vault Auto-Lock Timeout │ %s", m.session.AutoLockTimeout()))
	b.WriteString(helpStyle.Render("  Automatically lock the vault after a period of inactivity."))
	b.WriteString("\n\nPlugin Vault Access\n")

	if len(m.consumers) == 0 {
		b.WriteString("  No installed plugin uses the vault.\n")
	}
	for i, plugin := range m.consumers {
		state := "loading"
		if m.settings.states != nil {
			state = m.settings.states[plugin.ID].String()
		}
		row(i+1, fmt.Sprintf("%-24s │ %-10s │ %-12s │ %s", fitText(plugin.Name, 24), state, m.keyStatus(plugin), plugin.Author))
	}

	if m.settings.editingKey {
		if plugin, ok := m.selectedConsumer(); ok {
			b.WriteString(fmt.Sprintf("\nAPI key for %s: %s\n", plugin.Name, m.settings.keyInput.View()))
			b.WriteString(helpStyle.Render("enter: save │ esc: cancel"))
			b.WriteString("\n")
		}
	}

	if m.settings.confirmRevoke {
		if plugin, ok := m.selectedConsumer(); ok {
			b.WriteString(fmt.Sprintf("\nRevoke vault access for %s? It will no longer be able to store or retrieve its credentials. y: yes │ any key: no\n", plugin.Name))
		}
	}
	b.WriteString(m.statusLine())

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ enter: change timeout / set API key │ x: revoke access │ l: lock │ esc: back")
}

// keyStatus reads whether an API key is stored. It is only known for key
// plugins holding a grant.
func (m model) keyStatus(plugin models.PluginDescriptor) string {
	stored, known := m.settings.keys[plugin.ID]
	switch {
	case !known:
		return "-"
	case stored:
		return "key stored"
	default:
		return "no key"
	}
}

func (m model) cmdSetAutoLock(t models.AutoLockTimeout) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return autoLockSetMsg{timeout: t, err: session.SetAutoLockTimeout(ctx, t)}
	}
}

func (m model) cmdLoadPluginStates() tea.Cmd {
	ctx := m.ctx
	access := m.plugins
	consumers := m.consumers
	lookup := m.keyPlugins

	return func() tea.Msg {
		states := make(map[string]models.AccessState, len(consumers))
		stored := make(map[string]bool)
		for _, c := range consumers {
			state, err := access.State(ctx, c.ID)
			if err != nil {
				return pluginStatesMsg{err: err}
			}
			states[c.ID] = state
			if state != models.AccessGranted || lookup == nil {
				continue
			}

			kc, ok := lookup.KeyConsumer(c.ID)
			if !ok {
				continue
			}
			pv, err := access.Capability(c.ID)
			if err != nil {
				return pluginStatesMsg{err: err}
			}
			if !pv.Unlocked() {
				continue
			}
			_, found, err := kc.APIKey(ctx, pv)
			if err != nil {
				return pluginStatesMsg{err: err}
			}
			stored[c.ID] = found
		}
		return pluginStatesMsg{states: states, keys: stored}
	}
}

func (m model) cmdConfigureKey(plugin models.PluginDescriptor, apiKey string) tea.Cmd {
	ctx := m.ctx
	access := m.plugins
	lookup := m.keyPlugins

	return func() tea.Msg {
		kc, ok := lookup.KeyConsumer(plugin.ID)
		if !ok {
			return keyConfiguredMsg{plugin: plugin, err: fmt.Errorf("%s takes no API key", plugin.Name)}
		}
		pv, err := access.Capability(plugin.ID)
		if err != nil {
			return keyConfiguredMsg{plugin: plugin, err: err}
		}
		return keyConfiguredMsg{plugin: plugin, err: kc.Configure(ctx, pv, apiKey)}
	}
}

func (m model) cmdRevoke(plugin models.PluginDescriptor) tea.Cmd {
	ctx := m.ctx
	access := m.plugins

	return func() tea.Msg {
		return revokedMsg{plugin: plugin, err: access.Revoke(ctx, plugin.ID)}
	}
}
