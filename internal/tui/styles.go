// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Fielddrop.
// This file defines the shared lipgloss styles used across the view.
package tui // import "github.com/toeirei/fielddrop/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

var (
	// Help text and hints
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Excluded rows are shown struck through
	excludedItemStyle = lipgloss.NewStyle().
				Strikethrough(true).
				Foreground(colorSubtle)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	// Drag in progress
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	boxTitleStyle       = lipgloss.NewStyle().Bold(true)
	activeBoxTitleStyle = boxTitleStyle.Foreground(colorHighlight)

	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle)
	focusedBoxStyle = boxStyle.BorderForeground(colorHighlight)
	dropTargetStyle = boxStyle.BorderForeground(colorSpecial)
)
