// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session holds the drop pad buffer. Each drop appends the field
// value plus a delimiter and republishes the whole buffer to the clipboard.
//
// A Session is not safe for concurrent use; it is driven from the single UI
// event loop.
package session

import (
	"errors"
	"fmt"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/fielddrop/internal/classify"
	"github.com/toeirei/fielddrop/internal/clipboard"
	"github.com/toeirei/fielddrop/internal/logging"
	"github.com/toeirei/fielddrop/internal/profile"
)

// DefaultDelimiter terminates every dropped value.
const DefaultDelimiter = "\n"

var (
	// ErrExcludedField is returned when a guarded session refuses a drop.
	ErrExcludedField = errors.New("field is excluded from drag and drop")
	// ErrClipboard wraps clipboard write failures. The buffer is still
	// updated when it is returned.
	ErrClipboard = errors.New("clipboard write failed")
)

// State is the session lifecycle state.
type State int

const (
	StateEmpty State = iota
	StateAccumulating
)

func (s State) String() string {
	if s == StateAccumulating {
		return "accumulating"
	}
	return "empty"
}

// Session accumulates dropped values.
type Session struct {
	buf       strings.Builder
	drops     int
	delimiter string
	clip      clipboard.Writer
	guard     *classify.Classifier
	logger    *clog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithDelimiter sets the separator appended after every value.
func WithDelimiter(d string) Option {
	return func(s *Session) { s.delimiter = d }
}

// WithGuard makes the session re-check keys and refuse excluded fields.
func WithGuard(c *classify.Classifier) Option {
	return func(s *Session) { s.guard = c }
}

// WithLogger routes session logs to l instead of the package logger.
func WithLogger(l *clog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates an empty session publishing to w.
func New(w clipboard.Writer, opts ...Option) *Session {
	s := &Session{delimiter: DefaultDelimiter, clip: w}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OnDrop appends f's value and the delimiter, then writes the full buffer to
// the clipboard. It returns the buffer after the drop. A clipboard failure
// is reported as an error wrapping ErrClipboard, but the buffer has already
// been updated.
func (s *Session) OnDrop(f profile.Field) (string, error) {
	if s.guard != nil {
		if p, excluded := s.guard.Match(f.Key); excluded {
			s.warnf("refused drop of %q (matches %q)", f.Key, p)
			return s.buf.String(), fmt.Errorf("%w: %s", ErrExcludedField, f.Key)
		}
	}

	s.buf.WriteString(f.Value)
	s.buf.WriteString(s.delimiter)
	s.drops++
	out := s.buf.String()

	if s.clip == nil {
		return out, fmt.Errorf("%w: no clipboard configured", ErrClipboard)
	}
	if err := s.clip.WriteAll(out); err != nil {
		s.warnf("clipboard write after dropping %q: %v", f.Key, err)
		return out, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	s.debugf("dropped %q (%d bytes buffered)", f.Key, len(out))
	return out, nil
}

// Buffer returns the accumulated text.
func (s *Session) Buffer() string { return s.buf.String() }

// Drops returns the number of successful drops since the last Clear.
func (s *Session) Drops() int { return s.drops }

// Delimiter returns the configured separator.
func (s *Session) Delimiter() string { return s.delimiter }

// State reports whether anything has been dropped yet.
func (s *Session) State() State {
	if s.drops == 0 {
		return StateEmpty
	}
	return StateAccumulating
}

// Clear empties the buffer. The clipboard is left as is.
func (s *Session) Clear() {
	s.buf.Reset()
	s.drops = 0
}

func (s *Session) warnf(format string, v ...any) {
	if s.logger != nil {
		s.logger.Warn(fmt.Sprintf(format, v...))
		return
	}
	logging.Warnf(format, v...)
}

func (s *Session) debugf(format string, v ...any) {
	if s.logger != nil {
		s.logger.Debug(fmt.Sprintf(format, v...))
		return
	}
	logging.Debugf(format, v...)
}
