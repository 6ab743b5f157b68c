// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Pane composes a header line, a scrolling body and a footer line. The drop
// pad is a Pane whose body holds the accumulated buffer.
type Pane struct {
	Width  int
	Height int

	Header      string
	FooterLeft  string
	FooterRight string
	// Placeholder is shown dimmed while the body is empty.
	Placeholder string

	Viewport viewport.Model
	body     string
}

// NewPane creates an empty Pane.
func NewPane() *Pane {
	return &Pane{Viewport: viewport.New(0, 0)}
}

// SetHeader sets the header line.
func (p *Pane) SetHeader(h string) { p.Header = h }

// SetFooterTokens sets the left/right footer tokens.
func (p *Pane) SetFooterTokens(left, right string) {
	p.FooterLeft = left
	p.FooterRight = right
}

// SetBody replaces the body text and scrolls to its end.
func (p *Pane) SetBody(s string) {
	p.body = s
	if s == "" {
		p.Viewport.SetContent(lipgloss.NewStyle().Faint(true).Render(p.Placeholder))
		p.Viewport.GotoTop()
		return
	}
	p.Viewport.SetContent(s)
	p.Viewport.GotoBottom()
}

// Body returns the raw body text.
func (p *Pane) Body() string { return p.body }

// BodyHeight is the number of rows available to the viewport.
func (p *Pane) BodyHeight() int {
	h := p.Height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// SetSize sets the pane's total size and resizes the viewport.
func (p *Pane) SetSize(width, height int) {
	p.Width = width
	p.Height = height
	p.Viewport.Width = width
	p.Viewport.Height = p.BodyHeight()
	p.SetBody(p.body)
}

// View renders header, body and footer.
func (p *Pane) View() string {
	var b strings.Builder
	b.WriteString(p.Header)
	b.WriteString("\n")
	b.WriteString(p.Viewport.View())
	b.WriteString("\n")
	b.WriteString(StatusLine(p.FooterLeft, p.FooterRight, p.Width))
	return b.String()
}
