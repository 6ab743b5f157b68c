// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package classify partitions profile fields into draggable ("safe") fields
// and excluded, payment-card-like fields based on their key names only.
// Values are never inspected.
package classify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/toeirei/fielddrop/internal/profile"
)

// RegexPrefix marks a pattern as a regular expression instead of a plain
// substring.
const RegexPrefix = "re:"

// ErrBadPattern is returned by New when a regex pattern does not compile.
var ErrBadPattern = errors.New("invalid sensitive-key pattern")

// DefaultPatterns are the key fragments treated as payment-sensitive.
var DefaultPatterns = []string{"card", "cvv", "cvc", "expiry", "exp"}

type matcher struct {
	pattern string
	re      *regexp.Regexp
}

func (m matcher) match(key string) bool {
	if m.re != nil {
		return m.re.MatchString(key)
	}
	return strings.Contains(key, m.pattern)
}

// Classifier matches field keys against an explicit list of sensitive-name
// patterns.
type Classifier struct {
	matchers []matcher
}

// Result is the partition of a field set. Both sequences keep input order.
type Result struct {
	Safe     []profile.Field
	Excluded []profile.Field
}

// Len returns the total number of classified fields.
func (r Result) Len() int { return len(r.Safe) + len(r.Excluded) }

// New builds a classifier. Plain patterns match as case-insensitive
// substrings; patterns prefixed with "re:" are compiled as case-insensitive
// regular expressions. Empty patterns are ignored.
func New(patterns []string) (*Classifier, error) {
	c := &Classifier{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if expr, ok := strings.CutPrefix(p, RegexPrefix); ok {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, p, err)
			}
			c.matchers = append(c.matchers, matcher{pattern: p, re: re})
			continue
		}
		c.matchers = append(c.matchers, matcher{pattern: strings.ToLower(p)})
	}
	return c, nil
}

// Default returns a classifier over DefaultPatterns.
func Default() *Classifier {
	c, _ := New(DefaultPatterns)
	return c
}

// Patterns returns the configured patterns in match order.
func (c *Classifier) Patterns() []string {
	out := make([]string, 0, len(c.matchers))
	for _, m := range c.matchers {
		out = append(out, m.pattern)
	}
	return out
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Match reports the first pattern that excludes key.
func (c *Classifier) Match(key string) (string, bool) {
	k := normalize(key)
	for _, m := range c.matchers {
		if m.match(k) {
			return m.pattern, true
		}
	}
	return "", false
}

// IsExcluded reports whether key matches any sensitive pattern.
func (c *Classifier) IsExcluded(key string) bool {
	_, ok := c.Match(key)
	return ok
}

// Classify splits fields into safe and excluded sequences. Every input field
// lands in exactly one of them.
func (c *Classifier) Classify(fields []profile.Field) Result {
	var r Result
	for _, f := range fields {
		if c.IsExcluded(f.Key) {
			r.Excluded = append(r.Excluded, f)
		} else {
			r.Safe = append(r.Safe, f)
		}
	}
	return r
}
