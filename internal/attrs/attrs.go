// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"strings"

	"github.com/tfctl/jgrep/internal/log"
	"github.com/tfctl/jgrep/internal/record"
)

// Attr is a single field named by --extract. Key is a dotted path resolved
// against each matched record and doubles as the column title.
type Attr struct {
	Key string `yaml:"key" json:"Key"`
}

// Value resolves the attr against rec. Absent and null values render as the
// empty string.
func (a Attr) Value(rec record.Record) string {
	value, ok := rec.Lookup(a.Key)
	if !ok {
		log.Tracef("attr absent: key=%s", a.Key)
		return ""
	}
	return value
}

// AttrList is the ordered set of extraction fields.
type AttrList []Attr

// Set parses a comma separated --extract value and appends each field.
// Surrounding whitespace is trimmed and empty entries are dropped. Duplicates
// are kept so every requested column appears.
func (a *AttrList) Set(value string) error {
	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)

	for _, spec := range specs {
		key := strings.TrimSpace(spec)
		if key == "" {
			continue
		}
		*a = append(*a, Attr{Key: key})
	}

	log.Tracef("attrs set: len=%d", len(*a))
	return nil
}

// Parse builds an AttrList from a --extract value.
func Parse(value string) AttrList {
	var a AttrList
	_ = a.Set(value)
	return a
}

// Header returns the column titles in field order.
func (a AttrList) Header() []string {
	header := make([]string, 0, len(a))
	for _, attr := range a {
		header = append(header, attr.Key)
	}
	return header
}

// Row stringifies each field of rec, preserving field order. The row always
// has one cell per attr.
func (a AttrList) Row(rec record.Record) []string {
	row := make([]string, 0, len(a))
	for _, attr := range a {
		row = append(row, attr.Value(rec))
	}
	return row
}

// Extract parses line and returns its row. The second value is false when
// line is not a record, in which case no row is produced.
func (a AttrList) Extract(line string) ([]string, bool) {
	rec, ok := record.Parse(line)
	if !ok {
		return nil, false
	}
	return a.Row(rec), true
}

// String returns the list in --extract form.
func (a *AttrList) String() string {
	return strings.Join(a.Header(), ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
