// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ListView renders a vertical list with a selection cursor. It scrolls so
// that the selected row stays visible within Height rows.
type ListView struct {
	Items    []string
	Selected int
	Offset   int
	Width    int
	Height   int
	// NoCursor renders the list read-only, without a selection marker.
	NoCursor bool

	// SelectedStyle is applied to the selected row.
	SelectedStyle lipgloss.Style
}

// NewList creates a new ListView populated with items.
func NewList(items []string) *ListView {
	return &ListView{Items: items}
}

// SetItems replaces the items, clamping selection and scroll position.
func (l *ListView) SetItems(items []string) {
	l.Items = items
	if l.Selected >= len(items) {
		l.Selected = len(items) - 1
	}
	if l.Selected < 0 {
		l.Selected = 0
	}
	l.clampOffset()
}

// SetSize sets the rendering width and height for the list.
func (l *ListView) SetSize(w, h int) {
	l.Width = w
	l.Height = h
	l.clampOffset()
}

// MoveUp moves the selection up by one, clamping to bounds.
func (l *ListView) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
	l.clampOffset()
}

// MoveDown moves the selection down by one, clamping to bounds.
func (l *ListView) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
	l.clampOffset()
}

// Select moves the cursor to i if it is a valid row.
func (l *ListView) Select(i int) {
	if i >= 0 && i < len(l.Items) {
		l.Selected = i
		l.clampOffset()
	}
}

// RowAt maps a visible row (0 = first rendered line) to an item index.
func (l *ListView) RowAt(row int) (int, bool) {
	if row < 0 || (l.Height > 0 && row >= l.Height) {
		return 0, false
	}
	i := l.Offset + row
	if i >= len(l.Items) {
		return 0, false
	}
	return i, true
}

func (l *ListView) clampOffset() {
	if l.Height <= 0 {
		l.Offset = 0
		return
	}
	if l.Selected < l.Offset {
		l.Offset = l.Selected
	}
	if l.Selected >= l.Offset+l.Height {
		l.Offset = l.Selected - l.Height + 1
	}
	if last := len(l.Items) - l.Height; l.Offset > last {
		l.Offset = last
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
}

// Render returns the visible rows, each prefixed with a cursor marker and
// padded or truncated to Width. Lines are joined without a trailing newline.
func (l *ListView) Render() string {
	end := len(l.Items)
	if l.Height > 0 && l.Offset+l.Height < end {
		end = l.Offset + l.Height
	}
	lines := make([]string, 0, end-l.Offset)
	for i := l.Offset; i < end; i++ {
		selected := !l.NoCursor && i == l.Selected
		prefix := "  "
		if selected {
			prefix = "> "
		}
		line := prefix + l.Items[i]
		if l.Width > 0 {
			line = ansi.Truncate(line, l.Width, "...")
			if pad := l.Width - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
		}
		if selected {
			line = l.SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
