// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/devkit-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type detailState struct {
	secret        models.UserSecret
	reveal        bool
	confirmDelete bool
}

func (m model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	sec := m.detail.secret
	if m.detail.confirmDelete {
		m.detail.confirmDelete = false
		if key.Matches(keyMsg, keys.allow) {
			return m, m.cmdDelete(sec.ID)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.screen = screenList
		m.detail = detailState{}
	case key.Matches(keyMsg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy("Password", sec.Entry.Password)
	case key.Matches(keyMsg, keys.copyUser):
		return m, m.cmdCopy("Username", sec.Entry.Username)
	case key.Matches(keyMsg, keys.edit):
		m.screen = screenForm
		m.form = newFormState(sec.ID, sec.Entry)
		m.detail = detailState{}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.detail.confirmDelete = true
	case key.Matches(keyMsg, keys.lock):
		return m.lockNow()
	}
	return m, nil
}

func (m model) viewDetail() string {
	e := m.detail.secret.Entry

	password := mask(e.Password)
	if m.detail.reveal {
		password = valueOrDash(e.Password)
	}

	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Title    │ " + e.Title + "\n")
	b.WriteString("Username │ " + valueOrDash(e.Username) + "\n")
	b.WriteString("Password │ " + password + "\n")
	b.WriteString("URL      │ " + valueOrDash(e.URL) + "\n")
	b.WriteString("Tags     │ " + valueOrDash(strings.Join(e.Tags, ", ")) + "\n")
	b.WriteString("Notes    │ ")
	if e.Notes == "" {
		b.WriteString("-\n")
	} else {
		b.WriteString(strings.ReplaceAll(e.Notes, "\n", "\n         │ "))
		b.WriteString("\n")
	}

	if m.detail.confirmDelete {
		b.WriteString(fmt.Sprintf("\nDelete %q? y: yes │ any key: no\n", e.Title))
	}
	b.WriteString(m.statusLine())

	return renderPage(strings.ToUpper(e.Title), strings.TrimRight(b.String(), "\n"),
		"esc: back │ r: reveal │ c: copy password │ u: copy username │ e: edit │ d: delete │ l: lock")
}
