// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/fielddrop/internal/classify"
	"github.com/toeirei/fielddrop/internal/clipboard"
	"github.com/toeirei/fielddrop/internal/i18n"
	"github.com/toeirei/fielddrop/internal/session"
	"github.com/toeirei/fielddrop/internal/watch"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// newSampleModel returns a model showing the sample profile at 80x24 and the
// in-memory clipboard behind its session.
func newSampleModel(t *testing.T) (*Model, *clipboard.Memory) {
	t.Helper()
	i18n.Init("en")
	clip := &clipboard.Memory{}
	c := classify.Default()
	m := New(Options{
		Sample:     true,
		Classifier: c,
		Session:    session.New(clip, session.WithGuard(c)),
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, clip
}

func TestNew_SampleSplitsFields(t *testing.T) {
	m, _ := newSampleModel(t)
	if len(m.fields.Items) != 11 {
		t.Fatalf("expected 11 safe fields, got %d: %v", len(m.fields.Items), m.fields.Items)
	}
	if len(m.excluded.Items) != 3 {
		t.Fatalf("expected 3 excluded fields, got %d: %v", len(m.excluded.Items), m.excluded.Items)
	}
	for _, item := range m.fields.Items {
		if strings.Contains(item, "card") {
			t.Fatalf("sensitive field leaked into the draggable list: %q", item)
		}
	}
	if m.fields.Items[0] != "profile_name: Billing" {
		t.Fatalf("fields should keep profile order, first is %q", m.fields.Items[0])
	}
}

func TestKeyboard_PickUpAndDrop(t *testing.T) {
	m, clip := newSampleModel(t)

	m.Update(keySpace)
	if m.drag == nil || m.drag.field.Key != "profile_name" {
		t.Fatalf("space should pick up the selected field, drag=%+v", m.drag)
	}
	if m.focus != focusPad {
		t.Fatalf("picking up should move focus to the pad")
	}
	m.Update(keyEnter)
	if m.drag != nil {
		t.Fatalf("drop should end the drag")
	}
	if got := m.session.Buffer(); got != "Billing\n" {
		t.Fatalf("unexpected buffer %q", got)
	}
	if clip.Text != "Billing\n" || clip.Writes != 1 {
		t.Fatalf("clipboard not updated: %q (%d writes)", clip.Text, clip.Writes)
	}
	if m.statusKind != statusSuccess {
		t.Fatalf("expected success status, got %q", m.status)
	}
}

func TestKeyboard_EnterDropsSelectedField(t *testing.T) {
	m, clip := newSampleModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(keyEnter)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(keyEnter)
	if want := "Megan Young\n9999999999\n"; clip.Text != want {
		t.Fatalf("want %q, got %q", want, clip.Text)
	}
	if !strings.Contains(m.pad.Body(), "9999999999") {
		t.Fatalf("pad should show the buffer: %q", m.pad.Body())
	}
}

func TestKeyboard_EscCancelsDrag(t *testing.T) {
	m, clip := newSampleModel(t)
	m.Update(keySpace)
	m.Update(keyEsc)
	if m.drag != nil || m.focus != focusFields {
		t.Fatalf("esc should cancel the drag and return focus")
	}
	m.Update(keyEnter) // immediate drop of the selection, not the cancelled drag
	if clip.Writes != 1 {
		t.Fatalf("expected a single write, got %d", clip.Writes)
	}
}

func TestMouse_DragFieldOntoPad(t *testing.T) {
	m, clip := newSampleModel(t)
	l := m.layout()

	// second row of the list is billing_name
	m.Update(tea.MouseMsg{X: 3, Y: l.listTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.drag == nil || m.drag.field.Key != "billing_name" {
		t.Fatalf("press on a row should pick it up, drag=%+v", m.drag)
	}
	m.Update(tea.MouseMsg{X: l.leftWidth + 5, Y: l.listTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := m.session.Buffer(); got != "Megan Young\n" {
		t.Fatalf("unexpected buffer %q", got)
	}
	if clip.Text != "Megan Young\n" {
		t.Fatalf("clipboard should mirror the buffer, got %q", clip.Text)
	}
}

func TestMouse_ReleaseOutsidePadCancels(t *testing.T) {
	m, clip := newSampleModel(t)
	l := m.layout()

	m.Update(tea.MouseMsg{X: 3, Y: l.listTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 3, Y: l.height - 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.drag != nil {
		t.Fatalf("drag should end on release")
	}
	if clip.Writes != 0 || m.session.Drops() != 0 {
		t.Fatalf("release outside the pad must not drop")
	}

	// press on the title row above the list picks nothing up
	m.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.drag != nil {
		t.Fatalf("press outside the list started a drag")
	}
}

func TestLoad_MalformedShowsAlert(t *testing.T) {
	i18n.Init("en")
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": `), 0600); err != nil {
		t.Fatal(err)
	}
	m := New(Options{Path: path, Session: session.New(&clipboard.Memory{})})
	if m.alert == nil || m.loadErr == nil {
		t.Fatalf("malformed file should raise an alert")
	}
	if len(m.fields.Items) != 0 || len(m.excluded.Items) != 0 {
		t.Fatalf("both lists should be empty after a failed load")
	}
	if m.statusKind != statusError {
		t.Fatalf("expected error status, got %q", m.status)
	}
	if !strings.Contains(m.View(), i18n.T("alert.load_failed")) {
		t.Fatalf("alert not rendered")
	}
	m.Update(keyEnter)
	if m.alert != nil {
		t.Fatalf("enter should dismiss the alert")
	}
	m.Update(keyEnter) // nothing to drop
	if m.session.Drops() != 0 {
		t.Fatalf("empty list must not drop")
	}
}

func TestReload_PicksUpChanges(t *testing.T) {
	i18n.Init("en")
	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte(`{"name": "Alice"}`), 0600); err != nil {
		t.Fatal(err)
	}
	m := New(Options{Path: path, Session: session.New(&clipboard.Memory{})})
	m.Update(keyEnter)
	if err := os.WriteFile(path, []byte(`{"name": "Bob", "age": 42, "cvv": "123"}`), 0600); err != nil {
		t.Fatal(err)
	}
	m.Update(keyRunes("r"))
	if len(m.fields.Items) != 2 || m.fields.Items[0] != "name: Bob" || m.fields.Items[1] != "age: 42" {
		t.Fatalf("reload did not refresh the list: %v", m.fields.Items)
	}
	if len(m.excluded.Items) != 1 {
		t.Fatalf("expected cvv to be excluded: %v", m.excluded.Items)
	}
	if m.session.Buffer() != "Alice\n" {
		t.Fatalf("reload must keep the pad, got %q", m.session.Buffer())
	}

	// change events from an unknown watcher are ignored
	m.Update(fileChangedMsg{path: path})
	if m.statusKind == statusError {
		t.Fatalf("stray change event should be ignored")
	}
}

func TestPicker_FailedLoadStillWatchesNewFile(t *testing.T) {
	i18n.Init("en")
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"name": "Alice"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{"name": `), 0600); err != nil {
		t.Fatal(err)
	}
	m := New(Options{
		Path:    good,
		Session: session.New(&clipboard.Memory{}),
		Watch: func(p string) (*watch.Watcher, error) {
			return watch.New(p, watch.WithDebounce(20*time.Millisecond))
		},
	})
	defer m.Close()
	if m.Init() == nil || m.watcher == nil {
		t.Fatalf("initial file should be watched")
	}

	m.Update(keyRunes("o"))
	if m.picker == nil {
		t.Fatalf("o should open the file picker")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown}) // rows: ../, bad.json, good.json
	_, cmd := m.Update(keyEnter)
	if m.alert == nil || m.loadErr == nil {
		t.Fatalf("malformed pick should raise an alert")
	}
	if m.watcher == nil || m.watcher.Path() != bad {
		t.Fatalf("failed load should still watch the picked file, watcher=%v", m.watcher)
	}
	if cmd == nil {
		t.Fatalf("expected a command waiting for changes")
	}
	m.Update(keyEnter) // dismiss the alert

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(bad, []byte(`{"name": "Bob"}`), 0600); err != nil {
		t.Fatal(err)
	}

	var msg tea.Msg
	select {
	case msg = <-msgs:
	case <-time.After(5 * time.Second):
		t.Fatalf("no change event for the fixed file")
	}
	if _, ok := msg.(fileChangedMsg); !ok {
		t.Fatalf("expected fileChangedMsg, got %T", msg)
	}
	m.Update(msg)
	if m.loadErr != nil {
		t.Fatalf("fixed file should load, got %v", m.loadErr)
	}
	if len(m.fields.Items) != 1 || m.fields.Items[0] != "name: Bob" {
		t.Fatalf("fields not reloaded: %v", m.fields.Items)
	}
}

func TestFilter_NarrowsFields(t *testing.T) {
	m, clip := newSampleModel(t)
	m.Update(keyRunes("/"))
	if !m.filtering {
		t.Fatalf("/ should start filtering")
	}
	m.Update(keyRunes("city"))
	if len(m.fields.Items) != 1 || m.fields.Items[0] != "city: Succasunna" {
		t.Fatalf("unexpected filtered rows %v", m.fields.Items)
	}
	m.Update(keyEnter) // leave filter input
	m.Update(keyEnter) // drop the match
	if clip.Text != "Succasunna\n" {
		t.Fatalf("unexpected clipboard %q", clip.Text)
	}

	m.Update(keyEsc)
	if m.filter != "" || len(m.fields.Items) != 11 {
		t.Fatalf("esc should clear the filter, got %q with %d rows", m.filter, len(m.fields.Items))
	}

	m.Update(keyRunes("/"))
	m.Update(keyRunes("zzz"))
	if len(m.fields.Items) != 0 {
		t.Fatalf("filter without matches should leave the list empty")
	}
	if !strings.Contains(m.View(), i18n.T("fields.no_match")) {
		t.Fatalf("empty filter result should be explained")
	}
}

func TestClear_ResetsPadOnly(t *testing.T) {
	m, clip := newSampleModel(t)
	m.Update(keyEnter)
	m.Update(keyRunes("x"))
	if m.session.Buffer() != "" || m.session.Drops() != 0 {
		t.Fatalf("clear should reset the session")
	}
	if clip.Text != "Billing\n" {
		t.Fatalf("clear must not touch the clipboard, got %q", clip.Text)
	}
	m.Update(keyEnter)
	if clip.Text != "Billing\n" || clip.Writes != 2 {
		t.Fatalf("buffer should start over after clear, got %q", clip.Text)
	}
}

func TestDrop_ClipboardFailureStillUpdatesPad(t *testing.T) {
	i18n.Init("en")
	clip := &clipboard.Memory{Fail: true}
	m := New(Options{Sample: true, Session: session.New(clip)})
	m.Update(keyEnter)
	if m.session.Buffer() != "Billing\n" {
		t.Fatalf("buffer should update despite clipboard failure, got %q", m.session.Buffer())
	}
	if m.statusKind != statusWarn || !strings.Contains(m.status, clipboard.ErrUnavailable.Error()) {
		t.Fatalf("expected clipboard warning, got %q", m.status)
	}
}

func TestView_FitsTerminal(t *testing.T) {
	m, _ := newSampleModel(t)
	out := m.View()
	if h := lipgloss.Height(out); h > 24 {
		t.Fatalf("view taller than the terminal: %d", h)
	}
	for _, want := range []string{i18n.T("fields.title"), i18n.T("pad.title"), i18n.T("excluded.title"), "card_cvv"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	m.Update(keyRunes("?"))
	if h := lipgloss.Height(m.View()); h > 24 {
		t.Fatalf("full help pushed the view past the terminal: %d", h)
	}

	m.Update(keyRunes("q"))
	if !m.quitting || m.View() != "" {
		t.Fatalf("q should quit")
	}
}

func TestView_FitsSmallTerminals(t *testing.T) {
	sizes := [][2]int{{40, 15}, {200, 10}, {30, 12}, {80, 16}, {80, 8}, {20, 5}, {60, 3}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		m, _ := newSampleModel(t)
		m.Update(tea.WindowSizeMsg{Width: w, Height: h})
		if got := lipgloss.Height(m.View()); got > h {
			t.Fatalf("%dx%d: view is %d lines", w, h, got)
		}
		m.Update(keyRunes("?"))
		if got := lipgloss.Height(m.View()); got > h {
			t.Fatalf("%dx%d with full help: view is %d lines", w, h, got)
		}
		m.Update(keyRunes("o"))
		if got := lipgloss.Height(m.View()); got > h {
			t.Fatalf("%dx%d with file picker: view is %d lines", w, h, got)
		}
	}
}

func TestMouse_RowsMatchViewOnShortTerminal(t *testing.T) {
	m, clip := newSampleModel(t)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	l := m.layout()
	if l.listHeight < 2 {
		t.Fatalf("expected room for two list rows, got %+v", l)
	}
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[l.listTop], "profile_name") || !strings.Contains(lines[l.listTop+1], "billing_name") {
		t.Fatalf("list rows not where the layout puts them:\n%s", strings.Join(lines, "\n"))
	}

	m.Update(tea.MouseMsg{X: 3, Y: l.listTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.drag == nil || m.drag.field.Key != "billing_name" {
		t.Fatalf("press should pick up billing_name, drag=%+v", m.drag)
	}
	m.Update(tea.MouseMsg{X: l.leftWidth + 5, Y: l.listTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if clip.Text != "Megan Young\n" {
		t.Fatalf("unexpected clipboard %q", clip.Text)
	}
}

func TestView_PadFooterShowsDelimiter(t *testing.T) {
	i18n.Init("en")
	m := New(Options{Sample: true, Session: session.New(&clipboard.Memory{}, session.WithDelimiter("\t"))})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	if out := m.View(); !strings.Contains(out, `delim "\t"`) {
		t.Fatalf("pad footer should show the delimiter:\n%s", out)
	}
}
