// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse implements drag and drop with the mouse: a left press on a
// field row picks it up, a release over the pad drops it. Excluded rows are
// outside every drag source region.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.alert != nil || m.picker != nil {
		return nil
	}
	reg, row := m.layout().regionAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			switch reg {
			case regionFields:
				if i, ok := m.fields.RowAt(row); ok {
					m.fields.Select(i)
					m.focus = focusFields
					m.pickUp(true)
				}
			case regionPad:
				m.focus = focusPad
			}
		case tea.MouseButtonWheelUp:
			m.scroll(reg, -1)
		case tea.MouseButtonWheelDown:
			m.scroll(reg, 1)
		}

	case tea.MouseActionRelease:
		if m.drag == nil || !m.drag.mouse {
			return nil
		}
		switch reg {
		case regionPad:
			m.drop(m.drag.field)
		case regionFields:
			// press and release on the list is a plain click
			m.cancelDrag(false)
			m.setStatus(statusInfo, "")
		default:
			m.cancelDrag(true)
		}
	}
	return nil
}

func (m *Model) scroll(reg region, delta int) {
	switch reg {
	case regionFields:
		if delta < 0 {
			m.fields.MoveUp()
		} else {
			m.fields.MoveDown()
		}
	case regionPad:
		if delta < 0 {
			m.pad.Viewport.LineUp(1)
		} else {
			m.pad.Viewport.LineDown(1)
		}
	}
}
