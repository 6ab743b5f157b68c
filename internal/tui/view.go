// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/fielddrop/internal/i18n"
	"github.com/toeirei/fielddrop/internal/tui/frame"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	titleRows       = 1
	statusRows      = 1
	maxExcludedRows = 4
	minMiddleHeight = 5
)

// layout records where each region is drawn so mouse events can be mapped
// back onto it. All values are in terminal cells. The regions always add up
// to at most height rows: bubbletea drops overflowing lines from the top,
// which would shift every row away from where regionAt expects it.
type layout struct {
	width, height int

	hintRows int
	helpRows int

	leftWidth    int // outer width of the fields box; the pad box takes the rest
	middleTop    int // row of the top border of the fields/pad boxes
	middleHeight int // outer height of the fields/pad boxes, 0 when hidden
	listTop      int // row of the first field
	listHeight   int

	excludedRows   int // 0 when the excluded box is hidden
	excludedHeight int // outer height of the excluded box
}

func computeLayout(width, height, excludedCount, helpRows int) layout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	l := layout{width: width, height: height, hintRows: 1, helpRows: max(helpRows, 1)}

	l.leftWidth = width * 2 / 5
	if l.leftWidth < 20 {
		l.leftWidth = min(20, width/2)
	}

	// Small terminals give up the excluded box, then help, then the hint,
	// before the fields and pad boxes shrink below minMiddleHeight.
	l.excludedRows = min(max(excludedCount, 1), maxExcludedRows)
	free := func() int {
		excluded := 0
		if l.excludedRows > 0 {
			excluded = l.excludedRows + 2 + 2 // title + note, borders
		}
		return height - titleRows - l.hintRows - statusRows - l.helpRows - excluded
	}
	for l.excludedRows > 1 && free() < minMiddleHeight {
		l.excludedRows--
	}
	if free() < minMiddleHeight {
		l.excludedRows = 0
	}
	if free() < minMiddleHeight {
		l.helpRows = 0
	}
	if free() < minMiddleHeight {
		l.hintRows = 0
	}
	if l.excludedRows > 0 {
		l.excludedHeight = l.excludedRows + 4
	}

	l.middleTop = titleRows + l.hintRows
	l.middleHeight = max(free(), 0)
	if l.middleHeight < 3 { // not even borders and a title fit
		l.middleHeight = 0
	}
	l.listTop = l.middleTop + 2 // border + box title
	l.listHeight = max(l.middleHeight-3, 0)
	return l
}

func (l layout) fieldsInnerWidth() int { return max(l.leftWidth-2, 1) }
func (l layout) padInnerWidth() int    { return max(l.width-l.leftWidth-2, 1) }
func (l layout) middleInnerHeight() int {
	return max(l.middleHeight-2, 1)
}

type region int

const (
	regionNone region = iota
	regionFields
	regionPad
)

// regionAt maps a cell to a screen region. For regionFields it also returns
// the list row (0 = first visible field).
func (l layout) regionAt(x, y int) (region, int) {
	if y < l.middleTop || y >= l.middleTop+l.middleHeight || x < 0 || x >= l.width {
		return regionNone, 0
	}
	if x >= l.leftWidth {
		return regionPad, 0
	}
	if y >= l.listTop && y < l.listTop+l.listHeight && x > 0 && x < l.leftWidth-1 {
		return regionFields, y - l.listTop
	}
	return regionNone, 0
}

func (m *Model) layout() layout {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = lipgloss.Height(m.help.View(m.keys))
	}
	return computeLayout(m.width, m.height, len(m.result.Excluded), helpRows)
}

// resize pushes the current layout into the child widgets.
func (m *Model) resize() {
	l := m.layout()
	m.fields.SetSize(l.fieldsInnerWidth(), max(l.listHeight, 1))
	m.excluded.SetSize(l.width-2, max(l.excludedRows, 1))
	m.pad.SetSize(l.padInnerWidth(), l.middleInnerHeight())
	m.help.Width = l.width
	if m.picker != nil {
		m.picker.Width = min(l.width-4, 76)
		m.picker.Height = max(l.height-4, 10)
	}
}

// View renders the whole screen, never taller than the terminal.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout()

	if m.alert != nil {
		m.alert.SetWidth(min(l.width-4, 60))
		return clipLines(lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, m.alert.Render()), l.height)
	}
	if m.picker != nil {
		return clipLines(lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, m.picker.Render()), l.height)
	}

	parts := []string{mainTitleStyle.Render(ansi.Truncate(i18n.T("app.title"), l.width, "…"))}
	if l.hintRows > 0 {
		parts = append(parts, helpStyle.Render(ansi.Truncate(i18n.T("app.hint"), l.width, "…")))
	}
	if l.middleHeight > 0 {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, m.viewFields(l), m.viewPad(l)))
	}
	if l.excludedRows > 0 {
		parts = append(parts, m.viewExcluded(l))
	}
	parts = append(parts, m.viewStatus(l))
	if l.helpRows > 0 {
		parts = append(parts, m.help.View(m.keys))
	}
	return clipLines(strings.Join(parts, "\n"), l.height)
}

// clipLines drops lines past the bottom of the screen so the top rows stay
// where the layout put them.
func clipLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}

func (m *Model) viewFields(l layout) string {
	titleStyle := boxTitleStyle
	style := boxStyle
	if m.focus == focusFields && m.drag == nil {
		titleStyle = activeBoxTitleStyle
		style = focusedBoxStyle
	}
	inner := l.fieldsInnerWidth()
	body := m.fields.Render()
	if len(m.fields.Items) == 0 {
		empty := i18n.T("fields.empty")
		if m.filter != "" {
			empty = i18n.T("fields.no_match")
		}
		body = helpStyle.Render(ansi.Truncate("  "+empty, inner, "…"))
	}
	content := titleStyle.Render(ansi.Truncate(i18n.T("fields.title"), inner, "…")) + "\n" + body
	return style.
		Width(inner).
		Height(l.middleInnerHeight()).
		MaxHeight(l.middleHeight).
		Render(content)
}

func (m *Model) viewPad(l layout) string {
	titleStyle := boxTitleStyle
	style := boxStyle
	switch {
	case m.drag != nil:
		titleStyle = specialStyle.Bold(true)
		style = dropTargetStyle
	case m.focus == focusPad:
		titleStyle = activeBoxTitleStyle
		style = focusedBoxStyle
	}
	inner := l.padInnerWidth()

	state := i18n.T("pad.state_empty")
	if m.session.Drops() > 0 {
		state = i18n.T("pad.state_accumulating")
	}
	m.pad.SetHeader(titleStyle.Render(ansi.Truncate(i18n.T("pad.title"), inner, "…")))
	counts := i18n.T("pad.drops", m.session.Drops()) + "  " + i18n.T("pad.delimiter", m.session.Delimiter())
	m.pad.SetFooterTokens(helpStyle.Render(counts), helpStyle.Render(state))

	return style.
		Width(inner).
		Height(l.middleInnerHeight()).
		MaxHeight(l.middleHeight).
		Render(m.pad.View())
}

func (m *Model) viewExcluded(l layout) string {
	inner := l.width - 2
	body := m.excluded.Render()
	if len(m.excluded.Items) == 0 {
		body = helpStyle.Render("  " + i18n.T("excluded.none"))
	} else {
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = excludedItemStyle.Render(line)
		}
		body = strings.Join(lines, "\n")
	}
	content := strings.Join([]string{
		boxTitleStyle.Render(ansi.Truncate(i18n.T("excluded.title"), inner, "…")),
		helpStyle.Render(ansi.Truncate(i18n.T("excluded.note"), inner, "…")),
		body,
	}, "\n")
	return boxStyle.
		Width(inner).
		Height(l.excludedRows + 2).
		MaxHeight(l.excludedHeight).
		Render(content)
}

func (m *Model) viewStatus(l layout) string {
	left := m.status
	switch m.statusKind {
	case statusSuccess:
		left = successStyle.Render(left)
	case statusWarn:
		left = specialStyle.Render(left)
	case statusError:
		left = errorStyle.Render(left)
	}
	if m.filtering || m.filter != "" {
		prompt := i18n.T("filter.prompt", m.filter)
		if m.filtering {
			prompt += "█"
		}
		left = selectedItemStyle.Render(prompt)
	}

	var right string
	switch {
	case m.path != "":
		right = filepath.Base(m.path)
	case m.sample:
		right = i18n.T("app.sample")
	}
	return frame.StatusLine(left, helpStyle.Render(right), l.width)
}
