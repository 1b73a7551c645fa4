// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"regexp"
	"strings"

	"github.com/tfctl/jgrep/internal/log"
)

// CaseInsensitive is the inline flag the regexp engine understands for case
// folding.
const CaseInsensitive = "(?i)"

// Matcher is a compiled search pattern. Construction never fails; an invalid
// pattern produces a Matcher that matches nothing.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// Compile compiles pattern. An empty pattern matches everything.
func Compile(pattern string) *Matcher {
	m := &Matcher{pattern: pattern}
	if pattern == "" {
		return m
	}

	m.re, m.err = regexp.Compile(pattern)
	if m.err != nil {
		log.Debugf("pattern rejected: pattern=%s err=%v", pattern, m.err)
	}
	return m
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string { return m.pattern }

// Valid reports whether the pattern compiled.
func (m *Matcher) Valid() bool { return m.err == nil }

// Err returns the compilation error, if any.
func (m *Matcher) Err() error { return m.err }

// Match reports whether text contains a match. Empty patterns always match
// and invalid ones never do.
func (m *Matcher) Match(text string) bool {
	if m.pattern == "" {
		return true
	}
	if m.err != nil {
		return false
	}
	return m.re.MatchString(text)
}

// Regexp returns the compiled expression. The second value is false for empty
// and invalid patterns.
func (m *Matcher) Regexp() (*regexp.Regexp, bool) {
	if m.pattern == "" || m.err != nil {
		return nil, false
	}
	return m.re, true
}

// Match is a one-shot form of Compile(pattern).Match(text).
func Match(text, pattern string) bool {
	return Compile(pattern).Match(text)
}

// IgnoreCase prefixes pattern with the case-insensitive flag unless it is
// already there. Empty patterns are returned unchanged.
func IgnoreCase(pattern string) string {
	if pattern == "" || strings.HasPrefix(pattern, CaseInsensitive) {
		return pattern
	}
	return CaseInsensitive + pattern
}
