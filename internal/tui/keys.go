// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	lock     key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	copyUser key.Binding
	reveal   key.Binding
	search   key.Binding
	settings key.Binding
	cycle    key.Binding
	revoke   key.Binding
	setKey   key.Binding
	generate key.Binding
	save     key.Binding
	showPass key.Binding
	info     key.Binding
	allow    key.Binding
	deny     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lock:     key.NewBinding(key.WithKeys("l")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	reveal:   key.NewBinding(key.WithKeys("r")),
	search:   key.NewBinding(key.WithKeys("/")),
	settings: key.NewBinding(key.WithKeys("s")),
	cycle:    key.NewBinding(key.WithKeys("enter", " ", "right")),
	revoke:   key.NewBinding(key.WithKeys("x")),
	setKey:   key.NewBinding(key.WithKeys("enter")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	showPass: key.NewBinding(key.WithKeys("ctrl+r")),
	info:     key.NewBinding(key.WithKeys("ctrl+v")),
	allow:    key.NewBinding(key.WithKeys("y", "a")),
	deny:     key.NewBinding(key.WithKeys("n", "d")),
}
