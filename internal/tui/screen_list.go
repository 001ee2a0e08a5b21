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

type listState struct {
	entries       []models.UserSecret
	cursor        int
	loading       bool
	search        textinput.Model
	searching     bool
	query         string
	confirmDelete bool

	// selectID moves the cursor once the next load arrives.
	selectID string
}

func newListState() listState {
	search := textinput.New()
	search.Placeholder = "search title or username"
	search.CharLimit = 64
	search.Width = 32

	return listState{search: search}
}

func (l listState) selected() (models.UserSecret, bool) {
	if l.cursor < 0 || l.cursor >= len(l.entries) {
		return models.UserSecret{}, false
	}
	return l.entries[l.cursor], true
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if m.list.searching {
		return m.updateSearch(msg)
	}
	if !ok {
		return m, nil
	}

	if m.list.confirmDelete {
		m.list.confirmDelete = false
		if sec, ok := m.list.selected(); ok && key.Matches(keyMsg, keys.allow) {
			return m, m.cmdDelete(sec.ID)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.cursor < len(m.list.entries)-1 {
			m.list.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		if sec, ok := m.list.selected(); ok {
			m.screen = screenDetail
			m.detail = detailState{secret: sec}
		}
	case key.Matches(keyMsg, keys.newItem):
		m.screen = screenForm
		m.form = newFormState("", models.CredentialEntry{})
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if sec, ok := m.list.selected(); ok {
			m.screen = screenForm
			m.form = newFormState(sec.ID, sec.Entry)
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.list.selected(); ok {
			m.list.confirmDelete = true
		}
	case key.Matches(keyMsg, keys.copy):
		if sec, ok := m.list.selected(); ok {
			return m, m.cmdCopy("Password", sec.Entry.Password)
		}
	case key.Matches(keyMsg, keys.copyUser):
		if sec, ok := m.list.selected(); ok {
			return m, m.cmdCopy("Username", sec.Entry.Username)
		}
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.settings):
		m.screen = screenSettings
		m.settings = settingsState{}
		return m, m.cmdLoadPluginStates()
	case key.Matches(keyMsg, keys.lock):
		return m.lockNow()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.Reset()
			if m.list.query == "" {
				return m, nil
			}
			m.list.query = ""
			return m, m.cmdLoadEntries("")
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	if q := m.list.search.Value(); q != m.list.query {
		m.list.query = q
		m.list.cursor = 0
		return m, tea.Batch(cmd, m.cmdLoadEntries(q))
	}
	return m, cmd
}

func (m model) onEntriesLoaded(msg entriesLoadedMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenUnlock {
		return m, nil
	}
	if msg.query != m.list.query {
		// superseded by a newer search
		return m, nil
	}
	m.list.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.list.entries = msg.entries
	if m.list.selectID != "" {
		for i, sec := range m.list.entries {
			if sec.ID == m.list.selectID {
				m.list.cursor = i
				break
			}
		}
		m.list.selectID = ""
	}
	m.list.cursor = min(m.list.cursor, len(m.list.entries)-1)
	m.list.cursor = max(m.list.cursor, 0)
	return m, nil
}

func (m model) onEntryDeleted(msg entryDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}
	if m.screen == screenDetail {
		m.screen = screenList
		m.detail = detailState{}
	}
	m.list.loading = true
	m, cmd := m.notify("Entry deleted.", models.NotificationSuccess)
	return m, tea.Batch(cmd, m.cmdLoadEntries(m.list.query))
}

func (m model) lockNow() (tea.Model, tea.Cmd) {
	m.session.Lock()
	m = m.toUnlock()
	m, cmd := m.notify("Vault locked.", models.NotificationInfo)
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m model) viewList() string {
	var b strings.Builder

	if m.list.searching || m.list.query != "" {
		b.WriteString("Search: ")
		b.WriteString(m.list.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.list.loading && len(m.list.entries) == 0:
		b.WriteString("Loading...\n")
	case len(m.list.entries) == 0 && m.list.query != "":
		b.WriteString("No entries match your search.\n")
	case len(m.list.entries) == 0:
		b.WriteString("The vault is empty. Press n to add an entry.\n")
	default:
		b.WriteString(fmt.Sprintf("  %-28s │ %-24s │ %s\n", "Title", "Username", "URL"))
		for i, sec := range m.list.entries {
			line := fmt.Sprintf("%-28s │ %-24s │ %s",
				fitText(sec.Entry.Title, 28),
				fitText(sec.Entry.Username, 24),
				fitText(valueOrDash(sec.Entry.URL), 32),
			)
			if i == m.list.cursor {
				b.WriteString("> ")
				b.WriteString(selectedStyle.Render(line))
			} else {
				b.WriteString("  ")
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}

	if m.list.confirmDelete {
		if sec, ok := m.list.selected(); ok {
			b.WriteString(fmt.Sprintf("\nDelete %q? y: yes │ any key: no\n", sec.Entry.Title))
		}
	}
	b.WriteString(m.statusLine())

	hotKeys := "↑/↓: move │ enter: open │ n: new │ e: edit │ d: delete │ c: copy password │ u: copy username │ /: search │ s: settings │ l: lock │ q: quit"
	if m.list.searching {
		hotKeys = "enter: apply │ esc: clear search"
	}
	return renderPage(fmt.Sprintf("VAULT (%d)", len(m.list.entries)), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m model) cmdLoadEntries(query string) tea.Cmd {
	ctx := m.ctx
	passwords := m.passwords

	return func() tea.Msg {
		var (
			entries []models.UserSecret
			err     error
		)
		if query == "" {
			entries, err = passwords.List(ctx)
		} else {
			entries, err = passwords.Search(ctx, query)
		}
		return entriesLoadedMsg{query: query, entries: entries, err: err}
	}
}

func (m model) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	passwords := m.passwords

	return func() tea.Msg {
		return entryDeletedMsg{id: id, err: passwords.Delete(ctx, id)}
	}
}

func (m model) cmdCopy(what, text string) tea.Cmd {
	write := m.clipboard

	return func() tea.Msg {
		return copiedMsg{what: what, err: write(text)}
	}
}
