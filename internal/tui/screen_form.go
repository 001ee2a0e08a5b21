// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldTags
	fieldNotes
)

var formLabels = [...]string{"Title   ", "Username", "Password", "URL     ", "Tags    "}

type formState struct {
	// id is empty for a new entry.
	id           string
	inputs       []textinput.Model
	notes        textarea.Model
	focus        int
	saving       bool
	showPassword bool
	errMsg       string
}

func newFormState(id string, entry models.CredentialEntry) formState {
	values := [...]string{entry.Title, entry.Username, entry.Password, entry.URL, strings.Join(entry.Tags, ", ")}
	placeholders := [...]string{"GitHub", "octocat", "ctrl+g generates one", "https://github.com", "work, git"}

	inputs := make([]textinput.Model, len(values))
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 512
		in.Width = 40
		in.SetValue(values[i])
		inputs[i] = in
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldTitle].Focus()

	notes := textarea.New()
	notes.Placeholder = "notes"
	notes.ShowLineNumbers = false
	notes.SetWidth(48)
	notes.SetHeight(4)
	notes.SetValue(entry.Notes)

	return formState{id: id, inputs: inputs, notes: notes}
}

func (f formState) entry() models.CredentialEntry {
	var tags []string
	for tag := range strings.SplitSeq(f.inputs[fieldTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return models.CredentialEntry{
		Title:    strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Username: strings.TrimSpace(f.inputs[fieldUsername].Value()),
		Password: f.inputs[fieldPassword].Value(),
		URL:      strings.TrimSpace(f.inputs[fieldURL].Value()),
		Notes:    f.notes.Value(),
		Tags:     tags,
	}
}

func (f *formState) setFocus(i int) {
	if f.focus == fieldNotes {
		f.notes.Blur()
	} else {
		f.inputs[f.focus].Blur()
	}

	f.focus = (i + fieldNotes + 1) % (fieldNotes + 1)
	if f.focus == fieldNotes {
		f.notes.Focus()
	} else {
		f.inputs[f.focus].Focus()
	}
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.form.saving {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenList
			m.form = formState{}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.setFocus(m.form.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter) && m.form.focus != fieldNotes:
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.showPass):
			m.form.showPassword = !m.form.showPassword
			if m.form.showPassword {
				m.form.inputs[fieldPassword].EchoMode = textinput.EchoNormal
			} else {
				m.form.inputs[fieldPassword].EchoMode = textinput.EchoPassword
			}
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			password, err := utils.GeneratePassword(utils.DefaultPasswordOptions())
			if err != nil {
				return m.fail(err)
			}
			m.form.inputs[fieldPassword].SetValue(password)
			return m.notify("Generated a new password.", models.NotificationInfo)
		case key.Matches(keyMsg, keys.save):
			m.form.saving = true
			m.form.errMsg = ""
			return m, m.cmdSave(m.form.id, m.form.entry())
		}
	}

	var cmd tea.Cmd
	if m.form.focus == fieldNotes {
		m.form.notes, cmd = m.form.notes.Update(msg)
	} else {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m model) onEntrySaved(msg entrySavedMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenForm {
		return m, nil
	}
	m.form.saving = false
	if msg.err != nil {
		m.form.errMsg = humanizeError(msg.err)
		return m.fail(msg.err)
	}

	m.screen = screenList
	m.form = formState{}
	m.list.loading = true
	m.list.selectID = msg.id
	m, cmd := m.notify("Entry saved.", models.NotificationSuccess)
	return m, tea.Batch(cmd, m.cmdLoadEntries(m.list.query))
}

func (m model) viewForm() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, in := range m.form.inputs {
		b.WriteString(formLabels[i])
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	b.WriteString("Notes    │\n")
	b.WriteString(m.form.notes.View())
	b.WriteString("\n")

	if m.form.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.form.errMsg))
		b.WriteString("\n")
	} else {
		b.WriteString(m.statusLine())
	}

	title := "NEW ENTRY"
	if m.form.id != "" {
		title = "EDIT ENTRY"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate password │ ctrl+r: show password │ ctrl+s: save │ esc: cancel")
}

func (m model) cmdSave(id string, entry models.CredentialEntry) tea.Cmd {
	ctx := m.ctx
	passwords := m.passwords

	return func() tea.Msg {
		savedID, err := passwords.Save(ctx, id, entry)
		return entrySavedMsg{id: savedID, err: err}
	}
}
