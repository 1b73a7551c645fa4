// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tokenize

import (
	"strings"

	"github.com/tfctl/jgrep/internal/record"
)

type lexState int

const (
	stateNormal lexState = iota
	stateString
	stateEscaped
)

type scope byte

const (
	objectScope scope = 'O'
	arrayScope  scope = 'A'
)

type lexer struct {
	raw    string
	tokens []Token
	stack  []scope
	state  lexState
	keyPos bool
	start  int // offset of the open string's first content byte
}

// Lex tokenizes line without highlighting.
func Lex(line string) []Token {
	raw := strings.TrimRight(line, "\n")
	if _, ok := record.Parse(raw); !ok {
		return []Token{{Kind: Text, Text: raw}}
	}

	l := &lexer{raw: raw, tokens: make([]Token, 0, len(raw)/2)}
	return l.run()
}

func (l *lexer) run() []Token {
	for i := 0; i < len(l.raw); {
		ch := l.raw[i]

		switch l.state {
		case stateEscaped:
			l.state = stateString
			i++
			continue
		case stateString:
			switch ch {
			case '\\':
				l.state = stateEscaped
			case '"':
				l.closeString(i)
				l.emit(Punctuation, `"`)
				l.state = stateNormal
			}
			i++
			continue
		}

		switch ch {
		case '"':
			l.emit(Punctuation, `"`)
			l.state = stateString
			l.start = i + 1
			i++
		case '{', '}', '[', ']', ':', ',':
			l.structural(ch)
			i++
		case ' ', '\t', '\r', '\n':
			l.emit(Text, l.raw[i:i+1])
			i++
		default:
			j := i
			for j < len(l.raw) && !isDelimiter(l.raw[j]) {
				j++
			}
			lit := l.raw[i:j]
			l.emit(classify(lit), lit)
			i = j
		}
	}

	// Only reachable for a string left open at end of input.
	if l.state != stateNormal && l.start < len(l.raw) {
		l.emit(String, l.raw[l.start:])
	}

	return l.tokens
}

func (l *lexer) emit(kind Kind, text string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text})
}

// closeString emits the content of the string ending at end. Empty strings
// produce no content token.
func (l *lexer) closeString(end int) {
	if end == l.start {
		return
	}

	kind := String
	if l.keyPos && l.top() == objectScope {
		kind = Key
	}
	l.emit(kind, l.raw[l.start:end])
}

func (l *lexer) structural(ch byte) {
	l.emit(Punctuation, string(ch))

	switch ch {
	case '{':
		l.stack = append(l.stack, objectScope)
		l.keyPos = true
	case '[':
		l.stack = append(l.stack, arrayScope)
	case '}', ']':
		// Unbalanced closers are tolerated.
		if len(l.stack) > 0 {
			l.stack = l.stack[:len(l.stack)-1]
		}
		l.keyPos = false
	case ':':
		l.keyPos = false
	case ',':
		if l.top() == objectScope {
			l.keyPos = true
		}
	}
}

func (l *lexer) top() scope {
	if len(l.stack) == 0 {
		return 0
	}
	return l.stack[len(l.stack)-1]
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ':', ',':
		return true
	default:
		return false
	}
}

// classify labels a bare literal: digits with at most one decimal point are
// numbers, anything else (true, false, null, signed or exponent numbers) is a
// value.
func classify(lit string) Kind {
	digits, dots := 0, 0
	for i := 0; i < len(lit); i++ {
		switch c := lit[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return Value
		}
	}
	if digits == 0 || dots > 1 {
		return Value
	}
	return Number
}
