// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/fielddrop/internal/i18n"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Focus  key.Binding
	PickUp key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Filter key.Binding
	Open   key.Binding
	Reload key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.PickUp, km.Drop, km.Focus, km.Open, km.Help, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Focus},
		{km.PickUp, km.Drop, km.Cancel},
		{km.Filter, km.Open, km.Reload},
		{km.Clear, km.Help, km.Quit},
	}
}

var _ help.KeyMap = keyMap{}

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("help.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("help.down")),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", i18n.T("help.focus")),
		),
		PickUp: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", i18n.T("help.pickup")),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("help.drop")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.cancel")),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", i18n.T("help.filter")),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", i18n.T("help.open")),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", i18n.T("help.reload")),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", i18n.T("help.clear")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}
