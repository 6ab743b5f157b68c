// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// IsolateConfig points the user config directory at an empty temp dir and
// hides FIELDDROP_* variables, so a developer's own fielddrop.yaml cannot
// leak into a test. It returns the temp dir.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)
	for _, e := range os.Environ() {
		name, _, ok := strings.Cut(e, "=")
		if !ok || !strings.HasPrefix(name, "FIELDDROP_") {
			continue
		}
		t.Setenv(name, "") // restored on cleanup
		_ = os.Unsetenv(name)
	}
	return dir
}

// WriteFile writes body to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
