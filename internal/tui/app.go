// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenForm
	screenSettings
)

const statusTimeout = 4 * time.Second

// model is the root of the UI. It routes keys to the active screen, shows
// the consent dialog above every screen and resets the idle timer on input.
type model struct {
	ctx        context.Context
	session    service.SessionService
	passwords  service.PasswordService
	plugins    service.PluginAccessService
	consumers  []models.PluginDescriptor
	keyPlugins KeyPluginLookup
	events     *Events
	clipboard  func(string) error
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger

	screen        screen
	showBuildInfo bool
	width         int
	height        int

	unlock   unlockState
	list     listState
	detail   detailState
	form     formState
	settings settingsState

	pending  []models.AccessRequest
	deciding bool

	status     string
	statusKind models.NotificationType
	statusSeq  int
}

func newModel(ctx context.Context, deps Deps, logger *logger.Logger) model {
	m := model{
		ctx:        ctx,
		session:    deps.Session,
		passwords:  deps.Passwords,
		plugins:    deps.Plugins,
		consumers:  deps.Consumers,
		keyPlugins: deps.KeyPlugins,
		events:     deps.Events,
		clipboard:  deps.Clipboard,
		buildInfo:  deps.BuildInfo,
		logger:     logger,
		pending:    deps.Plugins.Pending(),
	}
	if deps.Session.Locked() {
		return m.toUnlock()
	}
	m.screen = screenList
	m.list = newListState()
	m.list.loading = true
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.events.listen(m.ctx)}
	if m.screen == screenList {
		cmds = append(cmds, m.cmdLoadEntries(""))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		m.session.Touch(vault.ActivityKey)
	case tea.MouseMsg:
		m.session.Touch(mouseActivity(msg))
		return m, nil
	case notificationMsg:
		var cmd tea.Cmd
		m, cmd = m.onNotification(msg.notification)
		return m, tea.Batch(cmd, m.events.listen(m.ctx))
	case accessPromptMsg:
		m.pending = m.plugins.Pending()
		return m, m.events.listen(m.ctx)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case decidedMsg:
		return m.onDecided(msg)
	case unlockDoneMsg:
		return m.onUnlocked(msg)
	case entriesLoadedMsg:
		return m.onEntriesLoaded(msg)
	case entrySavedMsg:
		return m.onEntrySaved(msg)
	case entryDeletedMsg:
		return m.onEntryDeleted(msg)
	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.notify(msg.what+" copied to clipboard.", models.NotificationSuccess)
	case pluginStatesMsg:
		return m.onPluginStates(msg)
	case autoLockSetMsg:
		return m.onAutoLockSet(msg)
	case revokedMsg:
		return m.onRevoked(msg)
	case keyConfiguredMsg:
		return m.onKeyConfigured(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if len(m.pending) > 0 {
			return m.updateAccessModal(keyMsg)
		}
		if m.showBuildInfo {
			if key.Matches(keyMsg, keys.esc, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	}

	switch m.screen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateUnlock(msg)
	}
}

func (m model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if len(m.pending) > 0 {
		box := m.viewAccessModal()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	switch m.screen {
	case screenList:
		return m.viewList()
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	case screenSettings:
		return m.viewSettings()
	default:
		return m.viewUnlock()
	}
}

// toUnlock drops every decrypted value held by the screens.
func (m model) toUnlock() model {
	m.screen = screenUnlock
	m.list = listState{}
	m.detail = detailState{}
	m.form = formState{}
	m.settings = settingsState{}
	m.unlock = newUnlockState()
	return m
}

func (m model) onNotification(n models.Notification) (model, tea.Cmd) {
	if m.screen != screenUnlock && m.session.Locked() {
		m = m.toUnlock()
	}
	return m.notify(n.Message, n.Type)
}

func (m model) notify(text string, kind models.NotificationType) (model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusKind = kind

	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// fail reports err and returns to the unlock screen when the vault locked
// underneath the running operation.
func (m model) fail(err error) (model, tea.Cmd) {
	if errors.Is(err, vault.ErrVaultLocked) && m.screen != screenUnlock {
		m = m.toUnlock()
	}
	m.logger.Debug().Err(err).Msg("operation failed")
	return m.notify(humanizeError(err), models.NotificationError)
}

func (m model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return "\n" + renderStatus(m.status, m.statusKind)
}

func mouseActivity(msg tea.MouseMsg) vault.Activity {
	switch ev := tea.MouseEvent(msg); {
	case ev.IsWheel():
		return vault.ActivityScroll
	case ev.Action == tea.MouseActionPress:
		return vault.ActivityClick
	default:
		return vault.ActivityPointer
	}
}
