// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package frame holds the small layout widgets the fielddrop TUI is built
// from: a scrolling list, the drop pad pane, a status line, an alert box and
// a JSON file picker.
package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusLine aligns left and right to the edges of a line of the given
// width. Widths are measured on the rendered cells, so styled tokens are
// fine. If both do not fit, left is truncated.
func StatusLine(left, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	if lw+rw+1 <= width {
		return left + strings.Repeat(" ", width-lw-rw) + right
	}
	maxLeft := width - rw - 1
	if maxLeft <= 0 {
		return ansi.Truncate(right, width, "")
	}
	return ansi.Truncate(left, maxLeft, "…") + " " + right
}
