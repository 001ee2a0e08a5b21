// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/devkit-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type unlockState struct {
	input      textinput.Model
	submitting bool
}

func newUnlockState() unlockState {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return unlockState{input: input}
}

func (m model) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.info):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.unlock.submitting {
				return m, nil
			}
			password := m.unlock.input.Value()
			if password == "" {
				return m.notify("Master password is required.", models.NotificationError)
			}
			m.unlock.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m model) onUnlocked(msg unlockDoneMsg) (tea.Model, tea.Cmd) {
	m.unlock.submitting = false
	m.unlock.input.Reset()
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.screen = screenList
	m.list = newListState()
	m.list.loading = true
	m, cmd := m.notify("Vault unlocked.", models.NotificationSuccess)
	return m, tea.Batch(cmd, m.cmdLoadEntries(""))
}

func (m model) viewUnlock() string {
	var b strings.Builder
	b.WriteString("Enter your master password to unlock the vault.\n")
	b.WriteString("A new vault is sealed with the first password you enter.\n\n")
	b.WriteString("Master password │ [")
	b.WriteString(m.unlock.input.View())
	b.WriteString("]\n")

	if m.unlock.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}
	b.WriteString(m.statusLine())

	return renderPage("DEVKIT VAULT IS LOCKED", strings.TrimRight(b.String(), "\n"), "enter: unlock │ ctrl+v: about")
}

func (m model) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return unlockDoneMsg{err: session.Unlock(ctx, password)}
	}
}
