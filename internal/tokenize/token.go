// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tokenize

import "strings"

// Kind classifies a token.
type Kind string

const (
	Text        Kind = "text"
	Punctuation Kind = "punctuation"
	Key         Kind = "key"
	String      Kind = "string"
	Number      Kind = "number"
	Value       Kind = "value"
	Match       Kind = "match"
)

// Token is a classified fragment of a line.
type Token struct {
	Kind Kind   `json:"t" yaml:"t"`
	Text string `json:"v" yaml:"v"`
}

// Join concatenates token texts, reconstructing the tokenized line.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// highlightable reports whether tokens of this kind take part in match
// segmentation.
func (k Kind) highlightable() bool {
	switch k {
	case Key, String, Number, Value:
		return true
	default:
		return false
	}
}
