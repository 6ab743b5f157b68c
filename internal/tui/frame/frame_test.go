// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStatusLine_Width(t *testing.T) {
	line := StatusLine("left", "right", 40)
	if got := lipgloss.Width(line); got != 40 {
		t.Fatalf("status line width mismatch: want=40 got=%d line=%q", got, line)
	}
	if !strings.HasPrefix(line, "left") || !strings.HasSuffix(line, "right") {
		t.Fatalf("tokens not aligned: %q", line)
	}

	long := StatusLine(strings.Repeat("x", 50), "end", 20)
	if got := lipgloss.Width(long); got > 20 {
		t.Fatalf("truncated status line too wide: %d", got)
	}
	if !strings.HasSuffix(long, "end") {
		t.Fatalf("right token must survive truncation: %q", long)
	}
}

func TestListView_ScrollsAndMapsRows(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d", "e"})
	l.SetSize(10, 2)
	l.MoveDown()
	l.MoveDown()
	if l.Selected != 2 || l.Offset != 1 {
		t.Fatalf("expected selection 2 at offset 1, got %d/%d", l.Selected, l.Offset)
	}
	out := l.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rendered lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "> c") {
		t.Fatalf("selected row should carry cursor: %q", lines[1])
	}
	if i, ok := l.RowAt(0); !ok || i != 1 {
		t.Fatalf("row 0 should map to item 1, got %d %v", i, ok)
	}
	if _, ok := l.RowAt(2); ok {
		t.Fatalf("row outside height should not map")
	}

	l.SetItems([]string{"only"})
	if l.Selected != 0 || l.Offset != 0 {
		t.Fatalf("SetItems should clamp, got %d/%d", l.Selected, l.Offset)
	}
}

func TestListView_NoCursorAndTruncation(t *testing.T) {
	l := NewList([]string{"card_number: [excluded]"})
	l.NoCursor = true
	l.SetSize(12, 3)
	out := l.Render()
	if strings.Contains(out, ">") {
		t.Fatalf("read-only list must not render a cursor: %q", out)
	}
	if got := lipgloss.Width(out); got != 12 {
		t.Fatalf("expected row padded/truncated to 12, got %d (%q)", got, out)
	}
}

func TestPane_PlaceholderAndBody(t *testing.T) {
	p := NewPane()
	p.Placeholder = "Drop here"
	p.SetHeader("Drop Pad")
	p.SetFooterTokens("0 drops", "empty")
	p.SetSize(30, 6)
	p.SetBody("")
	if !strings.Contains(p.View(), "Drop here") {
		t.Fatalf("empty pane should show placeholder: %q", p.View())
	}
	p.SetBody("Alice\n42\n")
	v := p.View()
	if !strings.Contains(v, "Alice") || strings.Contains(v, "Drop here") {
		t.Fatalf("pane should show body instead of placeholder: %q", v)
	}
	if p.BodyHeight() != 4 {
		t.Fatalf("expected body height 4, got %d", p.BodyHeight())
	}
}

func TestAlert_Render(t *testing.T) {
	a := NewAlert("Load failed", "malformed JSON", "OK")
	a.SetWidth(40)
	out := a.Render()
	for _, want := range []string{"Load failed", "malformed JSON", "OK"} {
		if !strings.Contains(out, want) {
			t.Fatalf("alert missing %q: %q", want, out)
		}
	}
}

func TestFilePicker_FiltersAndNavigates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.JSON", "notes.txt", "c.json.gz"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "inner.json"), []byte(`{}`), 0600); err != nil {
		t.Fatal(err)
	}

	fp := NewFilePicker(dir, ".json", ".json.gz")
	want := []string{"../", "sub/", "a.JSON", "b.json", "c.json.gz"}
	if strings.Join(fp.rows(), ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected rows %v, want %v", fp.rows(), want)
	}

	// enter sub/
	fp.MoveDown()
	if got := fp.SelectCurrent(); got != "" {
		t.Fatalf("selecting a directory should not return a file, got %q", got)
	}
	if fp.Dir() != filepath.Join(dir, "sub") {
		t.Fatalf("expected to be in sub, got %s", fp.Dir())
	}
	fp.MoveDown()
	if got := fp.SelectCurrent(); got != filepath.Join(dir, "sub", "inner.json") {
		t.Fatalf("unexpected selection %q", got)
	}

	// ".." goes back up
	fp.MoveUp()
	fp.SelectCurrent()
	if fp.Dir() != dir {
		t.Fatalf("expected to be back in %s, got %s", dir, fp.Dir())
	}

	fp.Width, fp.Height = 50, 14
	if out := fp.Render(); !strings.Contains(out, "b.json") || strings.Contains(out, "notes.txt") {
		t.Fatalf("render should list only matching files: %q", out)
	}
}
