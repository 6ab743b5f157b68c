// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert is a modal box with a title, a message and a single OK button. The
// TUI uses it to surface load failures.
type Alert struct {
	title   string
	message string
	button  string
	width   int
}

// NewAlert creates an alert box.
func NewAlert(title, message, button string) *Alert {
	return &Alert{
		title:   title,
		message: message,
		button:  button,
		width:   60,
	}
}

// SetWidth sets the alert width.
func (a *Alert) SetWidth(width int) {
	if width > 10 {
		a.width = width
	}
}

// Message returns the alert text.
func (a *Alert) Message() string { return a.message }

// Render produces the alert box.
func (a *Alert) Render() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("160")).
		Bold(true).
		Width(a.width)

	header := headerStyle.Render(" " + a.title)

	messageStyle := lipgloss.NewStyle().
		Width(a.width-4).
		Padding(1, 2, 0, 2)

	message := messageStyle.Render(a.message)

	buttonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("60")).
		Padding(0, 3, 0, 3)

	buttonArea := lipgloss.NewStyle().
		Padding(1, 2, 1, 2).
		Render(buttonStyle.Render(a.button))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(a.width)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, header, message, buttonArea))
}
