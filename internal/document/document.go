// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"encoding/json"

	"github.com/tfctl/jgrep/internal/tokenize"
)

// Kind tags a document as an error or a result.
type Kind string

const (
	ErrorKind  Kind = "error"
	ResultKind Kind = "result"
)

// Format names the payload carried by a result.
type Format string

const (
	LinesFormat  Format = "lines"
	TokensFormat Format = "tokens"
	TableFormat  Format = "table"
	PrettyFormat Format = "pretty"
)

// Table is an extracted header and its rows.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Pretty holds one re-indented block per matched line.
type Pretty struct {
	Blocks []string `json:"blocks" yaml:"blocks"`
}

// Document is the output of one invocation.
type Document struct {
	kind    Kind
	format  Format
	message string
	lines   []string
	tokens  [][]tokenize.Token
	table   Table
	pretty  Pretty
}

// Error builds an error document.
func Error(message string) Document {
	return Document{kind: ErrorKind, message: message}
}

// Lines builds a result holding raw matched lines.
func Lines(lines []string) Document {
	return Document{kind: ResultKind, format: LinesFormat, lines: nonNil(lines)}
}

// Tokens builds a result holding one token sequence per matched line.
func Tokens(tokens [][]tokenize.Token) Document {
	if tokens == nil {
		tokens = [][]tokenize.Token{}
	}
	for i := range tokens {
		if tokens[i] == nil {
			tokens[i] = []tokenize.Token{}
		}
	}
	return Document{kind: ResultKind, format: TokensFormat, tokens: tokens}
}

// NewTable builds a table result. Rows are expected to match the header
// width.
func NewTable(header []string, rows [][]string) Document {
	if rows == nil {
		rows = [][]string{}
	}
	for i := range rows {
		rows[i] = nonNil(rows[i])
	}
	return Document{kind: ResultKind, format: TableFormat, table: Table{Header: nonNil(header), Rows: rows}}
}

// NewPretty builds a pretty result.
func NewPretty(blocks []string) Document {
	return Document{kind: ResultKind, format: PrettyFormat, pretty: Pretty{Blocks: nonNil(blocks)}}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Kind reports whether the document is an error or a result.
func (d Document) Kind() Kind { return d.kind }

// IsError reports whether the document is an error.
func (d Document) IsError() bool { return d.kind == ErrorKind }

// Format returns the result payload format, or "" for errors.
func (d Document) Format() Format { return d.format }

// Message returns the error message, or "" for results.
func (d Document) Message() string { return d.message }

func (d Document) Lines() []string { return d.lines }
func (d Document) Tokens() [][]tokenize.Token { return d.tokens }
func (d Document) Table() Table { return d.table }
func (d Document) Pretty() Pretty { return d.pretty }

// wire returns the serializable shape of d. Only the active payload is
// present.
func (d Document) wire() any {
	if d.kind == ErrorKind {
		return struct {
			Type  Kind   `json:"type" yaml:"type"`
			Error string `json:"error" yaml:"error"`
		}{d.kind, d.message}
	}

	switch d.format {
	case TokensFormat:
		return struct {
			Type   Kind               `json:"type" yaml:"type"`
			Format Format             `json:"format" yaml:"format"`
			Tokens [][]tokenize.Token `json:"tokens" yaml:"tokens"`
		}{d.kind, d.format, d.tokens}
	case TableFormat:
		return struct {
			Type   Kind   `json:"type" yaml:"type"`
			Format Format `json:"format" yaml:"format"`
			Table  Table  `json:"table" yaml:"table"`
		}{d.kind, d.format, d.table}
	case PrettyFormat:
		return struct {
			Type   Kind   `json:"type" yaml:"type"`
			Format Format `json:"format" yaml:"format"`
			Pretty Pretty `json:"pretty" yaml:"pretty"`
		}{d.kind, d.format, d.pretty}
	default:
		return struct {
			Type   Kind     `json:"type" yaml:"type"`
			Format Format   `json:"format" yaml:"format"`
			Lines  []string `json:"lines" yaml:"lines"`
		}{d.kind, LinesFormat, nonNil(d.lines)}
	}
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (d Document) MarshalYAML() (interface{}, error) {
	return d.wire(), nil
}
