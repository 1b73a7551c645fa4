// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    bool
	}{
		{name: "empty pattern", text: "anything", pattern: "", want: true},
		{name: "empty pattern empty text", text: "", pattern: "", want: true},
		{name: "literal hit", text: `{"level":"ERROR"}`, pattern: "ERR", want: true},
		{name: "literal miss", text: `{"level":"ERROR"}`, pattern: "WARN", want: false},
		{name: "anchored", text: "abc", pattern: "^b", want: false},
		{name: "invalid fails closed", text: "((((", pattern: "(", want: false},
		{name: "lookahead unsupported", text: "foobar", pattern: "foo(?=bar)", want: false},
		{name: "case insensitive", text: "Timeout", pattern: "(?i)timeout", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.text, tt.pattern))
		})
	}
}

func TestCompile(t *testing.T) {
	m := Compile("")
	assert.True(t, m.Valid())
	_, ok := m.Regexp()
	assert.False(t, ok, "empty pattern has no regexp")

	m = Compile("[")
	assert.False(t, m.Valid())
	assert.Error(t, m.Err())
	_, ok = m.Regexp()
	assert.False(t, ok)
	assert.False(t, m.Match("["))

	m = Compile("a+")
	re, ok := m.Regexp()
	assert.True(t, ok)
	assert.Equal(t, "a+", re.String())
	assert.Equal(t, "a+", m.Pattern())
}

func TestIgnoreCase(t *testing.T) {
	assert.Equal(t, "(?i)abc", IgnoreCase("abc"))
	assert.Equal(t, "(?i)abc", IgnoreCase(IgnoreCase("abc")))
	assert.Equal(t, "", IgnoreCase(""))
	assert.True(t, Match("ABC", IgnoreCase("abc")))
}
