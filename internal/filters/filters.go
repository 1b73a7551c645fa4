// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strings"

	"github.com/tfctl/jgrep/internal/log"
	"github.com/tfctl/jgrep/internal/matcher"
	"github.com/tfctl/jgrep/internal/record"
)

// Filter is a single parsed where-clause term.
type Filter struct {
	Key   string `yaml:"key" json:"Key"`
	Value string `yaml:"value" json:"Value"`
}

// BuildWhere parses a where clause into its terms. The second value is false
// when any term lacks '=', in which case no line can satisfy the clause.
func BuildWhere(clause string) ([]Filter, bool) {
	fields := strings.Fields(clause)
	filters := make([]Filter, 0, len(fields))

	for _, field := range fields {
		key, value, found := strings.Cut(field, "=")
		if !found {
			log.Debugf("invalid where term: term=%s", field)
			return nil, false
		}
		filters = append(filters, Filter{Key: key, Value: value})
	}

	return filters, true
}

// Holds reports whether the record satisfies the term.
func (f Filter) Holds(rec record.Record) bool {
	value, ok := rec.Lookup(f.Key)
	if !ok {
		value = record.Absent
	}
	return value == f.Value
}

// PatternMatch reports whether text contains pattern. Empty patterns always
// match; invalid ones never do.
func PatternMatch(text, pattern string) bool {
	return matcher.Match(text, pattern)
}

// KeyFilter requires keyPath to resolve to a non-null value in rec. A
// non-empty pattern must additionally match the stringified value. isRecord
// is false when the line did not parse as an object.
func KeyFilter(rec record.Record, isRecord bool, keyPath string, pattern string) bool {
	return keyFilter(rec, isRecord, keyPath, matcher.Compile(pattern))
}

func keyFilter(rec record.Record, isRecord bool, keyPath string, m *matcher.Matcher) bool {
	if !isRecord {
		return false
	}

	value, ok := rec.Lookup(keyPath)
	if !ok {
		return false
	}

	return m.Match(value)
}

// WhereFilter reports whether rec satisfies every term of clause.
func WhereFilter(rec record.Record, isRecord bool, clause string) bool {
	filters, ok := BuildWhere(clause)
	if !ok {
		return false
	}
	return applyFilters(rec, isRecord, filters)
}

// applyFilters returns true if the record holds for all of the provided
// terms. An empty term list still requires a record.
func applyFilters(rec record.Record, isRecord bool, filters []Filter) bool {
	if !isRecord {
		return false
	}

	for _, filter := range filters {
		if !filter.Holds(rec) {
			return false
		}
	}

	return true
}
