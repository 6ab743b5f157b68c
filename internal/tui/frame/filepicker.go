// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FilePicker is the "Load JSON…" dialog. It lists directories and files
// whose names end in one of the configured suffixes.
type FilePicker struct {
	currentPath string
	entries     []os.DirEntry
	selected    int // index into rows (0 is "..")
	list        ListView
	suffixes    []string
	Width       int
	Height      int

	Title     string
	InfoFmt   string // fmt pattern for the info bar, receives the selection
	NoneLabel string
	EmptyText string
}

// NewFilePicker creates a picker rooted at dir showing files that end in
// one of suffixes (case-insensitive). No suffixes means all files.
func NewFilePicker(dir string, suffixes ...string) *FilePicker {
	fp := &FilePicker{
		currentPath: dir,
		Width:       60,
		Height:      20,
		Title:       "Load JSON",
		InfoFmt:     "Selected: %s | j/k navigate | enter select | u go up | esc cancel",
		NoneLabel:   "(none)",
		EmptyText:   "(empty directory)",
	}
	for _, s := range suffixes {
		fp.suffixes = append(fp.suffixes, strings.ToLower(s))
	}
	fp.loadFiles()
	return fp
}

// Dir returns the directory being listed.
func (fp *FilePicker) Dir() string { return fp.currentPath }

func (fp *FilePicker) accepts(name string) bool {
	if len(fp.suffixes) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, s := range fp.suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// loadFiles reads the current directory. Directories come first, then
// matching files, each sorted by name.
func (fp *FilePicker) loadFiles() {
	all, err := os.ReadDir(fp.currentPath)
	if err != nil {
		fp.entries = nil
	} else {
		fp.entries = fp.entries[:0]
		for _, e := range all {
			if e.IsDir() || fp.accepts(e.Name()) {
				fp.entries = append(fp.entries, e)
			}
		}
		sort.Slice(fp.entries, func(i, j int) bool {
			if fp.entries[i].IsDir() != fp.entries[j].IsDir() {
				return fp.entries[i].IsDir()
			}
			return fp.entries[i].Name() < fp.entries[j].Name()
		})
	}
	fp.selected = 0
	fp.list.Selected = 0
	fp.list.Offset = 0
	fp.list.SetItems(fp.rows())
}

// rows returns the display rows, ".." first.
func (fp *FilePicker) rows() []string {
	rows := []string{"../"}
	for _, e := range fp.entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		rows = append(rows, name)
	}
	return rows
}

// MoveUp moves selection up in the file list.
func (fp *FilePicker) MoveUp() {
	fp.list.MoveUp()
	fp.selected = fp.list.Selected
}

// MoveDown moves selection down in the file list.
func (fp *FilePicker) MoveDown() {
	fp.list.MoveDown()
	fp.selected = fp.list.Selected
}

// SelectCurrent enters the selected directory and returns "", or returns the
// full path of the selected file.
func (fp *FilePicker) SelectCurrent() string {
	if fp.selected == 0 {
		fp.GoUp()
		return ""
	}
	i := fp.selected - 1
	if i < 0 || i >= len(fp.entries) {
		return ""
	}
	e := fp.entries[i]
	fullPath := filepath.Join(fp.currentPath, e.Name())
	if e.IsDir() {
		fp.currentPath = fullPath
		fp.loadFiles()
		return ""
	}
	return fullPath
}

// GoUp navigates up one directory level.
func (fp *FilePicker) GoUp() {
	parent := filepath.Dir(fp.currentPath)
	if parent != fp.currentPath { // not at root
		fp.currentPath = parent
		fp.loadFiles()
	}
}

// GetSelected returns the currently selected row name.
func (fp *FilePicker) GetSelected() string {
	rows := fp.list.Items
	if fp.selected >= 0 && fp.selected < len(rows) {
		return rows[fp.selected]
	}
	return ""
}

// Render produces the picker box.
func (fp *FilePicker) Render() string {
	inner := fp.Width - 2
	if inner < 10 {
		inner = 10
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(inner).
		Render(" " + fp.Title + ": " + fp.currentPath)

	listHeight := fp.Height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	fp.list.SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Bold(true)
	fp.list.SetSize(inner, listHeight)
	body := fp.list.Render()
	if len(fp.entries) == 0 {
		body += "\n  " + fp.EmptyText
	}
	body = lipgloss.NewStyle().Width(inner).Height(listHeight).Render(body)

	selected := fp.GetSelected()
	if selected == "" {
		selected = fp.NoneLabel
	}
	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Padding(1, 1, 0, 1).
		Render(strings.Replace(fp.InfoFmt, "%s", selected, 1))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(inner)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, info))
}
