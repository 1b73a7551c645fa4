// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/jgrep/internal/command"
)

func TestDescribeFlags(t *testing.T) {
	flags := describeFlags(command.NewSearchFlags(""))

	syntax := map[string]bool{}
	for _, f := range flags {
		syntax[f.Syntax] = true
		assert.NotEmpty(t, f.Description, f.Syntax)
	}

	assert.True(t, syntax["-E <string>"])
	assert.True(t, syntax["-i"])
	assert.True(t, syntax["--where <string>"])
	assert.True(t, syntax["--table"])
	assert.Len(t, flags, 7)
}

func TestRender(t *testing.T) {
	data, err := loadTemplateData(pageYAML, command.NewSearchFlags(""), "1.2.3")
	require.NoError(t, err)
	require.NotEmpty(t, data.Examples)

	var md bytes.Buffer
	require.NoError(t, render(&md, mdTemplate, data))
	assert.Contains(t, md.String(), "| `--extract <string>` |")
	assert.Contains(t, md.String(), "jgrep --where \"level=ERROR\" --pretty sample.jsonl")
	assert.Contains(t, md.String(), "for 1.2.3")

	var man bytes.Buffer
	require.NoError(t, render(&man, manTemplate, data))
	assert.Contains(t, man.String(), `.B jgrep --key user.id -E "\\d\\d\\d" sample.jsonl`)
}
