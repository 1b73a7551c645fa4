// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tokenize

import (
	"regexp"

	"github.com/tfctl/jgrep/internal/log"
	"github.com/tfctl/jgrep/internal/matcher"
)

// Tokenize lexes line and, when pattern is non-empty and valid, splits the
// result at pattern matches.
func Tokenize(line string, pattern string) []Token {
	tokens := Lex(line)
	if pattern == "" {
		return tokens
	}

	re, ok := matcher.Compile(pattern).Regexp()
	if !ok {
		log.Tracef("highlight skipped: pattern=%s", pattern)
		return tokens
	}

	return Highlight(tokens, re)
}

// Highlight splits every key, string, number and value token at the matches
// of re. Unmatched spans keep their kind, matched spans become Match tokens,
// and tokens without a match pass through untouched. Zero-width matches are
// ignored.
func Highlight(tokens []Token, re *regexp.Regexp) []Token {
	if re == nil {
		return tokens
	}

	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.Kind.highlightable() {
			out = append(out, tok)
			continue
		}
		out = appendSegments(out, tok, re)
	}

	return out
}

func appendSegments(out []Token, tok Token, re *regexp.Regexp) []Token {
	last := 0
	matched := false

	for _, loc := range re.FindAllStringIndex(tok.Text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		matched = true
		if loc[0] > last {
			out = append(out, Token{Kind: tok.Kind, Text: tok.Text[last:loc[0]]})
		}
		out = append(out, Token{Kind: Match, Text: tok.Text[loc[0]:loc[1]]})
		last = loc[1]
	}

	if !matched {
		return append(out, tok)
	}
	if last < len(tok.Text) {
		out = append(out, Token{Kind: tok.Kind, Text: tok.Text[last:]})
	}

	return out
}
