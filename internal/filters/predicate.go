// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"github.com/tfctl/jgrep/internal/matcher"
	"github.com/tfctl/jgrep/internal/record"
)

// Predicate is the line-level acceptance test. Zero-valued fields are not
// checked. Build it with NewPredicate so the pattern and where clause are
// compiled once rather than per line.
type Predicate struct {
	Pattern string
	Key     string
	Where   string

	matcher *matcher.Matcher
	where   []Filter
	whereOK bool
}

// NewPredicate compiles the pattern and where clause.
func NewPredicate(pattern, key, where string) *Predicate {
	p := &Predicate{
		Pattern: pattern,
		Key:     key,
		Where:   where,
		matcher: matcher.Compile(pattern),
	}
	p.where, p.whereOK = BuildWhere(where)
	return p
}

// Accept reports whether line passes the pattern, key and where checks, in
// that order. The line is parsed at most once.
func (p *Predicate) Accept(line string) bool {
	if p.Pattern != "" && !p.matcher.Match(line) {
		return false
	}

	if p.Key == "" && p.Where == "" {
		return true
	}

	rec, isRecord := record.Parse(line)

	if p.Key != "" && !keyFilter(rec, isRecord, p.Key, p.matcher) {
		return false
	}

	if p.Where != "" && (!p.whereOK || !applyFilters(rec, isRecord, p.where)) {
		return false
	}

	return true
}
