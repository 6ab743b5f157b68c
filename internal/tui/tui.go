// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Fielddrop.
// This file, tui.go, holds the top-level model: it owns the drop session,
// the classification of the loaded profile and the drag state, and it
// dispatches every key, mouse and file-change event sequentially.
package tui // import "github.com/toeirei/fielddrop/internal/tui"

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/toeirei/fielddrop/internal/classify"
	"github.com/toeirei/fielddrop/internal/clipboard"
	"github.com/toeirei/fielddrop/internal/i18n"
	"github.com/toeirei/fielddrop/internal/logging"
	"github.com/toeirei/fielddrop/internal/profile"
	"github.com/toeirei/fielddrop/internal/session"
	"github.com/toeirei/fielddrop/internal/tui/frame"
	"github.com/toeirei/fielddrop/internal/watch"
)

// focusArea is the part of the screen receiving keyboard input.
type focusArea int

const (
	focusFields focusArea = iota
	focusPad
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarn
	statusError
)

// fileChangedMsg is sent when the watched profile changes on disk.
type fileChangedMsg struct{ path string }

// watchErrMsg carries an error from the file watcher.
type watchErrMsg struct{ err error }

// drag is a field that has been picked up but not dropped yet.
type drag struct {
	field profile.Field
	mouse bool // started by a mouse press, ends on release
}

// Options configures the model.
type Options struct {
	// Path is the profile to load at startup. Empty means no file.
	Path string
	// Sample shows the built-in sample profile when Path is empty.
	Sample bool

	Classifier *classify.Classifier
	Session    *session.Session
	// Loader reads a profile; defaults to profile.Load.
	Loader func(path string) ([]profile.Field, error)
	// Watch, if set, creates a watcher for each loaded file.
	Watch func(path string) (*watch.Watcher, error)
	// StartDir is where the file picker opens when no file is loaded.
	StartDir string

	Context context.Context
}

// Model is the top-level bubbletea model.
type Model struct {
	ctx        context.Context
	classifier *classify.Classifier
	session    *session.Session
	loader     func(string) ([]profile.Field, error)
	newWatcher func(string) (*watch.Watcher, error)
	watcher    *watch.Watcher
	startDir   string

	path    string
	sample  bool
	result  classify.Result
	loadErr error
	visible []int // indices into result.Safe after filtering

	fields   *frame.ListView
	excluded *frame.ListView
	pad      *frame.Pane
	picker   *frame.FilePicker
	alert    *frame.Alert

	focus     focusArea
	drag      *drag
	filter    string
	filtering bool

	status     string
	statusKind statusKind

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// New builds the model and performs the initial load synchronously.
func New(opts Options) *Model {
	m := &Model{
		ctx:        opts.Context,
		classifier: opts.Classifier,
		session:    opts.Session,
		loader:     opts.Loader,
		newWatcher: opts.Watch,
		startDir:   opts.StartDir,
		fields:     frame.NewList(nil),
		excluded:   frame.NewList(nil),
		pad:        frame.NewPane(),
		keys:       newKeyMap(),
		help:       help.New(),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.classifier == nil {
		m.classifier = classify.Default()
	}
	if m.session == nil {
		m.session = session.New(&clipboard.Memory{}, session.WithGuard(m.classifier))
	}
	if m.loader == nil {
		m.loader = profile.Load
	}
	if m.startDir == "" {
		m.startDir, _ = os.Getwd()
	}
	m.fields.SelectedStyle = selectedItemStyle
	m.excluded.NoCursor = true
	m.pad.Placeholder = i18n.T("pad.placeholder")
	m.pad.SetBody(m.session.Buffer())

	switch {
	case opts.Path != "":
		m.load(opts.Path)
	case opts.Sample:
		m.sample = true
		m.setResult(m.classifier.Classify(profile.Sample()))
		m.setStatus(statusInfo, i18n.T("status.sample"))
	default:
		m.setStatus(statusInfo, i18n.T("status.no_file"))
	}
	m.resize()
	return m
}

// Init starts watching the initial file, if any.
func (m *Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return m.watchFile(m.path)
}

// Close releases the file watcher.
func (m *Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(opts Options) error {
	ctx, cancel := context.WithCancel(contextOrBackground(opts.Context))
	defer cancel()
	opts.Context = ctx

	m := New(opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// load replaces all fields with the contents of path. On failure both lists
// are emptied and the error is shown; the program keeps running.
func (m *Model) load(path string) bool {
	fields, err := m.loader(path)
	m.path = path
	m.sample = false
	m.drag = nil
	if err != nil {
		logging.Warnf("load %s: %v", path, err)
		m.loadErr = err
		m.setResult(classify.Result{})
		m.setStatus(statusError, i18n.T("status.load_failed", err))
		m.alert = frame.NewAlert(i18n.T("alert.load_failed"), err.Error(), i18n.T("alert.ok"))
		return false
	}
	m.loadErr = nil
	m.setResult(m.classifier.Classify(fields))
	logging.Infof("loaded %d fields from %s (%d excluded)", len(fields), path, len(m.result.Excluded))
	m.setStatus(statusInfo, i18n.T("status.loaded", len(fields), filepath.Base(path), len(m.result.Excluded)))
	return true
}

// watchFile replaces the current watcher with one for path.
func (m *Model) watchFile(path string) tea.Cmd {
	if m.newWatcher == nil {
		return nil
	}
	m.Close()
	w, err := m.newWatcher(path)
	if err != nil {
		logging.Warnf("watch %s: %v", path, err)
		m.setStatus(statusWarn, i18n.T("status.watch_failed", filepath.Base(path), err))
		return nil
	}
	w.Start(m.ctx)
	m.watcher = w
	return waitForChange(w)
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case p, ok := <-w.Events():
			if !ok {
				return nil
			}
			return fileChangedMsg{path: p}
		case err := <-w.Errors():
			return watchErrMsg{err: err}
		}
	}
}

func (m *Model) setResult(r classify.Result) {
	m.result = r
	items := make([]string, 0, len(r.Excluded))
	for _, f := range r.Excluded {
		items = append(items, i18n.T("excluded.item", f.Key))
	}
	m.excluded.SetItems(items)
	m.rebuildFields()
}

// rebuildFields recomputes the visible safe rows from the filter.
func (m *Model) rebuildFields() {
	m.visible = m.visible[:0]
	if m.filter == "" {
		for i := range m.result.Safe {
			m.visible = append(m.visible, i)
		}
	} else {
		keys := make([]string, len(m.result.Safe))
		for i, f := range m.result.Safe {
			keys[i] = f.Key
		}
		for _, match := range fuzzy.Find(m.filter, keys) {
			m.visible = append(m.visible, match.Index)
		}
	}
	items := make([]string, 0, len(m.visible))
	for _, i := range m.visible {
		items = append(items, m.result.Safe[i].Display())
	}
	m.fields.SetItems(items)
}

// selectedField returns the safe field under the cursor.
func (m *Model) selectedField() (profile.Field, bool) {
	i := m.fields.Selected
	if i < 0 || i >= len(m.visible) {
		return profile.Field{}, false
	}
	return m.result.Safe[m.visible[i]], true
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

// pickUp starts dragging the selected field.
func (m *Model) pickUp(mouse bool) bool {
	f, ok := m.selectedField()
	if !ok {
		m.setStatus(statusWarn, i18n.T("status.nothing_selected"))
		return false
	}
	m.drag = &drag{field: f, mouse: mouse}
	m.setStatus(statusWarn, i18n.T("status.dragging", f.Key))
	return true
}

func (m *Model) cancelDrag(announce bool) {
	if m.drag == nil {
		return
	}
	m.drag = nil
	if announce {
		m.setStatus(statusInfo, i18n.T("status.drag_cancelled"))
	}
}

// drop hands the field to the session and reflects the outcome.
func (m *Model) drop(f profile.Field) {
	m.drag = nil
	buf, err := m.session.OnDrop(f)
	m.pad.SetBody(buf)
	switch {
	case errors.Is(err, session.ErrExcludedField):
		m.setStatus(statusError, i18n.T("status.drop_refused", f.Key))
	case err != nil:
		m.setStatus(statusWarn, i18n.T("status.clipboard_failed", err))
	default:
		m.setStatus(statusSuccess, i18n.T("status.copied", f.Key))
	}
}

func (m *Model) clearPad() {
	m.session.Clear()
	m.pad.SetBody("")
	m.setStatus(statusInfo, i18n.T("status.cleared"))
}

func (m *Model) openPicker() {
	dir := m.startDir
	if m.path != "" {
		dir = filepath.Dir(m.path)
	}
	m.picker = frame.NewFilePicker(dir, ".json", ".json.gz", ".json.zst")
	m.picker.Title = i18n.T("picker.title")
	m.picker.InfoFmt = i18n.T("picker.info")
	m.picker.NoneLabel = i18n.T("picker.none")
	m.picker.EmptyText = i18n.T("picker.empty")
	m.resize()
}

// Update is the main message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case fileChangedMsg:
		if m.watcher == nil || msg.path != m.watcher.Path() {
			return m, nil
		}
		if m.load(m.path) {
			m.setStatus(statusInfo, i18n.T("status.changed", filepath.Base(m.path)))
		}
		m.resize()
		return m, waitForChange(m.watcher)

	case watchErrMsg:
		logging.Warnf("watch: %v", msg.err)
		if m.watcher != nil {
			return m, waitForChange(m.watcher)
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.alert != nil:
			return m, m.handleAlertKey(msg)
		case m.picker != nil:
			return m, m.handlePickerKey(msg)
		case m.filtering:
			return m, m.handleFilterKey(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleAlertKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", " ", "q":
		m.alert = nil
	}
	return nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.picker = nil
	case "up", "k":
		m.picker.MoveUp()
	case "down", "j":
		m.picker.MoveDown()
	case "u", "backspace":
		m.picker.GoUp()
	case "enter":
		if path := m.picker.SelectCurrent(); path != "" {
			m.picker = nil
			m.load(path)
			m.resize()
			// Watch the new file even when it failed to load, so fixing it
			// on disk reloads it.
			return m.watchFile(path)
		}
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter = ""
		m.filtering = false
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
	default:
		return nil
	}
	m.fields.Selected = 0
	m.rebuildFields()
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusFields {
			m.focus = focusPad
		} else {
			m.focus = focusFields
		}

	case key.Matches(msg, m.keys.Up):
		if m.focus == focusPad {
			m.pad.Viewport.LineUp(1)
		} else {
			m.fields.MoveUp()
		}

	case key.Matches(msg, m.keys.Down):
		if m.focus == focusPad {
			m.pad.Viewport.LineDown(1)
		} else {
			m.fields.MoveDown()
		}

	case key.Matches(msg, m.keys.PickUp):
		if m.pickUp(false) {
			m.focus = focusPad
		}

	case key.Matches(msg, m.keys.Drop):
		switch {
		case m.drag != nil:
			m.drop(m.drag.field)
			m.focus = focusFields
		case m.focus == focusFields:
			if f, ok := m.selectedField(); ok {
				m.drop(f)
			}
		}

	case key.Matches(msg, m.keys.Cancel):
		if m.drag != nil {
			m.cancelDrag(true)
			m.focus = focusFields
		} else if m.filter != "" {
			m.filter = ""
			m.rebuildFields()
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true

	case key.Matches(msg, m.keys.Open):
		m.openPicker()

	case key.Matches(msg, m.keys.Reload):
		if m.path == "" {
			m.setStatus(statusWarn, i18n.T("status.no_file"))
			return nil
		}
		if m.load(m.path) {
			m.setStatus(statusInfo, i18n.T("status.reloaded", filepath.Base(m.path)))
		}
		m.resize()

	case key.Matches(msg, m.keys.Clear):
		m.clearPad()
	}
	return nil
}
