// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/tidwall/pretty"

	"github.com/tfctl/jgrep/internal/record"
)

// prettyOptions indents by two spaces and never collapses arrays onto one
// line. Keys keep their original order.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// PrettyBlock re-indents line when it is a record. Anything else is returned
// unchanged.
func PrettyBlock(line string) string {
	rec, ok := record.Parse(line)
	if !ok {
		return line
	}

	out := pretty.PrettyOptions([]byte(strings.TrimSpace(rec.Raw())), prettyOptions)
	return strings.TrimRight(string(out), "\n")
}

// PrettyBlocks applies PrettyBlock to every line.
func PrettyBlocks(lines []string) []string {
	blocks := make([]string, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, PrettyBlock(line))
	}
	return blocks
}
