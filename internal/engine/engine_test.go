// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/jgrep/internal/dataset"
	"github.com/tfctl/jgrep/internal/document"
	"github.com/tfctl/jgrep/internal/tokenize"
)

var logLines = []string{
	`{"level":"INFO","service":"auth","msg":"ok","user":{"id":101}}`,
	`{"level":"ERROR","service":"auth","msg":"denied","user":{"id":2047},"err":{"code":"AUTH-401"}}`,
	`{"level":"ERROR","service":"billing","msg":"declined","err":{"code":"PMT-13"}}`,
	`{"level":"INFO","service":"billing"}`,
	`not json at all`,
}

func TestEffectivePattern(t *testing.T) {
	assert.Equal(t, "abc", Options{Pattern: "abc"}.EffectivePattern())
	assert.Equal(t, "(?i)abc", Options{Pattern: "abc", IgnoreCase: true}.EffectivePattern())
	assert.Equal(t, "(?i)abc", Options{Pattern: "(?i)abc", IgnoreCase: true}.EffectivePattern())
	assert.Equal(t, "", Options{IgnoreCase: true}.EffectivePattern())
}

func TestFilter_Selection(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantFormat document.Format
	}{
		{name: "default is tokens", opts: Options{}, wantFormat: document.TokensFormat},
		{name: "table needs extract", opts: Options{Extract: "level", Table: true}, wantFormat: document.TableFormat},
		{name: "table beats pretty", opts: Options{Extract: "level", Table: true, Pretty: true}, wantFormat: document.TableFormat},
		{name: "pretty", opts: Options{Pretty: true}, wantFormat: document.PrettyFormat},
		{name: "extract without table is tokens", opts: Options{Extract: "level"}, wantFormat: document.TokensFormat},
		{name: "table without extract is lines", opts: Options{Table: true}, wantFormat: document.LinesFormat},
		{name: "table without extract but pretty", opts: Options{Table: true, Pretty: true}, wantFormat: document.PrettyFormat},
		{name: "no matches is lines", opts: Options{Pattern: "NO_SUCH_EVENT"}, wantFormat: document.LinesFormat},
		{name: "no matches with table", opts: Options{Pattern: "NO_SUCH_EVENT", Extract: "level", Table: true}, wantFormat: document.TableFormat},
		{name: "no matches with pretty", opts: Options{Pattern: "NO_SUCH_EVENT", Pretty: true}, wantFormat: document.PrettyFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Filter(logLines, tt.opts)
			assert.False(t, doc.IsError())
			assert.Equal(t, tt.wantFormat, doc.Format())
		})
	}
}

func TestFilter_Pattern(t *testing.T) {
	doc := Filter(logLines, Options{Pattern: "ERROR"})
	require.Equal(t, document.TokensFormat, doc.Format())
	require.Len(t, doc.Tokens(), 2)

	for i, line := range doc.Tokens() {
		assert.Equal(t, logLines[i+1], tokenize.Join(line))
		assert.Contains(t, line, tokenize.Token{Kind: tokenize.Match, Text: "ERROR"})
	}
}

func TestFilter_IgnoreCase(t *testing.T) {
	assert.Equal(t, document.LinesFormat, Filter(logLines, Options{Pattern: "error"}).Format())

	doc := Filter(logLines, Options{Pattern: "error", IgnoreCase: true})
	assert.Len(t, doc.Tokens(), 2)
}

func TestFilter_InvalidPatternFailsClosed(t *testing.T) {
	doc := Filter(logLines, Options{Pattern: "("})
	assert.Equal(t, document.LinesFormat, doc.Format())
	assert.Empty(t, doc.Lines())
}

func TestFilter_Key(t *testing.T) {
	// Key existence only.
	doc := Filter(logLines, Options{Key: "err.code", Table: true, Extract: "err.code"})
	assert.Equal(t, [][]string{{"AUTH-401"}, {"PMT-13"}}, doc.Table().Rows)

	// Key with pattern tests the stringified value.
	doc = Filter(logLines, Options{Key: "user.id", Pattern: `\d\d\d`, Extract: "user.id", Table: true})
	assert.Equal(t, [][]string{{"101"}, {"2047"}}, doc.Table().Rows)

	doc = Filter(logLines, Options{Key: "user.id", Pattern: `^\d\d\d$`, Extract: "user.id", Table: true})
	assert.Equal(t, [][]string{}, doc.Table().Rows)
}

func TestFilter_Where(t *testing.T) {
	doc := Filter(logLines, Options{Where: "level=ERROR service=auth", Extract: "msg", Table: true})
	assert.Equal(t, [][]string{{"denied"}}, doc.Table().Rows)

	doc = Filter(logLines, Options{Where: "level=ERROR service=nope"})
	assert.Empty(t, doc.Lines())

	doc = Filter([]string{`{"a":"1","b":"2"}`}, Options{Where: "a"})
	assert.Empty(t, doc.Lines())

	// Raw string equality: the number 101 stringifies as "101".
	doc = Filter(logLines, Options{Where: "user.id=101"})
	assert.Len(t, doc.Tokens(), 1)
}

func TestFilter_Table(t *testing.T) {
	doc := Filter(logLines, Options{Extract: " level , msg ,", Table: true})
	tbl := doc.Table()

	assert.Equal(t, []string{"level", "msg"}, tbl.Header)
	// The non-json line matches but yields no row.
	assert.Equal(t, [][]string{
		{"INFO", "ok"},
		{"ERROR", "denied"},
		{"ERROR", "declined"},
		{"INFO", ""},
	}, tbl.Rows)
	for _, row := range tbl.Rows {
		assert.Len(t, row, len(tbl.Header))
	}
}

func TestFilter_Pretty(t *testing.T) {
	doc := Filter([]string{`{"b":1,"a":[2]}`, "text"}, Options{Pretty: true})
	assert.Equal(t, []string{"{\n  \"b\": 1,\n  \"a\": [\n    2\n  ]\n}", "text"}, doc.Pretty().Blocks)
}

func TestFilter_NonRecordsPassPatternOnly(t *testing.T) {
	doc := Filter(logLines, Options{Pattern: "json"})
	require.Len(t, doc.Tokens(), 1)
	assert.Equal(t, []tokenize.Token{{Kind: tokenize.Text, Text: "not json at all"}}, doc.Tokens()[0])

	// Key and where both require a record.
	assert.Empty(t, Filter(logLines, Options{Pattern: "json", Key: "level"}).Lines())
	assert.Empty(t, Filter(logLines, Options{Pattern: "json", Where: " "}).Lines())
}

func TestExecute(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.jsonl")
	present := filepath.Join(t.TempDir(), "present.jsonl")
	require.NoError(t, os.WriteFile(present, []byte(logLines[0]+"\n"), 0o600))

	eng := New(dataset.New(
		dataset.Sample(),
		dataset.File("missing.jsonl", missing),
		dataset.File("present.jsonl", present),
	))

	t.Run("no dataset", func(t *testing.T) {
		_, err := eng.Execute(Options{})
		var usage *UsageError
		require.True(t, errors.As(err, &usage))
		assert.Equal(t, "no file specified", usage.Error())
	})

	t.Run("unsupported dataset", func(t *testing.T) {
		_, err := eng.Execute(Options{Dataset: "other.jsonl"})
		var usage *UsageError
		require.True(t, errors.As(err, &usage))
		assert.Equal(t, "unsupported file: other.jsonl", usage.Error())
		assert.ErrorIs(t, err, dataset.ErrUnsupported)
	})

	t.Run("missing dataset", func(t *testing.T) {
		_, err := eng.Execute(Options{Dataset: "missing.jsonl"})
		var data *DataError
		require.True(t, errors.As(err, &data))
		assert.Equal(t, "missing sample file: missing.jsonl", data.Error())
		assert.Equal(t, "missing.jsonl", data.Dataset)
	})

	t.Run("file dataset", func(t *testing.T) {
		doc, err := eng.Execute(Options{Dataset: "present.jsonl", Extract: "level", Table: true})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"INFO"}}, doc.Table().Rows)
	})

	t.Run("sample walkthrough", func(t *testing.T) {
		doc, err := eng.Execute(Options{
			Dataset: dataset.SampleName,
			Extract: "ts,service,err.code",
			Table:   true,
			Where:   "err.code=PMT-13",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ts", "service", "err.code"}, doc.Table().Header)
		require.Len(t, doc.Table().Rows, 2)
		for _, row := range doc.Table().Rows {
			assert.Equal(t, "billing", row[1])
			assert.Equal(t, "PMT-13", row[2])
		}
	})

	t.Run("sample no matches", func(t *testing.T) {
		doc, err := eng.Execute(Options{Dataset: dataset.SampleName, Pattern: "NO_SUCH_EVENT"})
		require.NoError(t, err)
		assert.Equal(t, document.LinesFormat, doc.Format())
		assert.Empty(t, doc.Lines())
	})
}
