// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Absent is the text an absent or null value compares as in where clauses.
const Absent = "None"

// Record is a line known to hold a JSON object.
type Record struct {
	obj gjson.Result
}

// Parse parses line into a Record. The second value is false when the line
// is not valid JSON or its top level is not an object.
func Parse(line string) (Record, bool) {
	if !gjson.Valid(line) {
		return Record{}, false
	}

	obj := gjson.Parse(line)
	if !obj.IsObject() {
		return Record{}, false
	}

	return Record{obj: obj}, true
}

// Raw returns the JSON text of the record.
func (r Record) Raw() string { return r.obj.Raw }

// Resolve walks path through nested objects. Missing keys, null values and
// non-object intermediates all yield false.
func (r Record) Resolve(path string) (gjson.Result, bool) {
	current := r.obj

	for _, segment := range strings.Split(path, ".") {
		if !current.IsObject() {
			return gjson.Result{}, false
		}

		// Duplicate keys resolve to the last occurrence.
		var next gjson.Result
		found := false
		current.ForEach(func(key, value gjson.Result) bool {
			if key.String() == segment {
				next = value
				found = true
			}
			return true
		})
		if !found {
			return gjson.Result{}, false
		}

		current = next
	}

	if current.Type == gjson.Null {
		return gjson.Result{}, false
	}

	return current, true
}

// Lookup resolves path and stringifies the result.
func (r Record) Lookup(path string) (string, bool) {
	value, ok := r.Resolve(path)
	if !ok {
		return "", false
	}
	return Stringify(value), true
}

// Stringify renders a resolved value as text. Strings are returned decoded,
// everything else as its JSON text exactly as it appeared in the line.
func Stringify(value gjson.Result) string {
	if value.Type == gjson.String {
		return value.String()
	}
	return value.Raw
}
