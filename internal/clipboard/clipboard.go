// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard is the seam between the drop session and the OS
// clipboard.
package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// Writer overwrites the clipboard text.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// WriteAll replaces the OS clipboard contents with text.
func (System) WriteAll(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Available reports whether the platform has a usable clipboard backend
// (on Linux this needs xclip, xsel, wl-copy or termux).
func Available() bool {
	return !atotto.Unsupported
}

// ErrUnavailable is returned by a Memory writer configured to fail.
var ErrUnavailable = errors.New("clipboard unavailable")

// Memory keeps the clipboard in-process. It backs --clipboard=false and the
// tests.
type Memory struct {
	Text   string
	Writes int
	// Fail makes every write return ErrUnavailable.
	Fail bool
}

func (m *Memory) WriteAll(text string) error {
	if m.Fail {
		return ErrUnavailable
	}
	m.Text = text
	m.Writes++
	return nil
}
