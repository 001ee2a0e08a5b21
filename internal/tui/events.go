// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/devkit-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Events carries vault notifications and consent prompts into the UI. It
// implements vault.Notifier and vault.Prompter and never blocks the caller.
// Notifications are queued until the UI reads them; a repeat of the last
// queued one is folded into it. Prompts collapse into the latest one, since
// the model re-reads the pending queue on every prompt.
type Events struct {
	mu     sync.Mutex
	queue  []notificationMsg
	prompt *accessPromptMsg
	wake   chan struct{}
}

func NewEvents() *Events {
	return &Events{wake: make(chan struct{}, 1)}
}

func (e *Events) Notify(n models.Notification) {
	e.mu.Lock()
	if last := len(e.queue) - 1; last < 0 || e.queue[last].notification != n {
		e.queue = append(e.queue, notificationMsg{notification: n})
	}
	e.mu.Unlock()
	e.signal()
}

func (e *Events) PromptAccess(req models.AccessRequest) {
	e.mu.Lock()
	e.prompt = &accessPromptMsg{request: req}
	e.mu.Unlock()
	e.signal()
}

func (e *Events) signal() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

func (e *Events) next() (tea.Msg, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) > 0 {
		msg := e.queue[0]
		e.queue = e.queue[1:]
		return msg, true
	}
	if e.prompt != nil {
		msg := *e.prompt
		e.prompt = nil
		return msg, true
	}
	return nil, false
}

// listen waits for the next event. It returns nil once ctx is done.
func (e *Events) listen(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		for {
			if msg, ok := e.next(); ok {
				return msg
			}
			select {
			case <-e.wake:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
