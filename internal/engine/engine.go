// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"

	"github.com/tfctl/jgrep/internal/attrs"
	"github.com/tfctl/jgrep/internal/dataset"
	"github.com/tfctl/jgrep/internal/document"
	"github.com/tfctl/jgrep/internal/filters"
	"github.com/tfctl/jgrep/internal/log"
	"github.com/tfctl/jgrep/internal/matcher"
	"github.com/tfctl/jgrep/internal/output"
	"github.com/tfctl/jgrep/internal/tokenize"
)

// Options is the parsed invocation.
type Options struct {
	Pattern    string
	IgnoreCase bool
	Key        string
	Where      string
	Extract    string
	Table      bool
	Pretty     bool
	Dataset    string
}

// EffectivePattern returns Pattern, marked case-insensitive when IgnoreCase
// is set. An empty pattern stays empty.
func (o Options) EffectivePattern() string {
	if o.IgnoreCase {
		return matcher.IgnoreCase(o.Pattern)
	}
	return o.Pattern
}

// Engine resolves datasets through a Cache and filters them.
type Engine struct {
	cache *dataset.Cache
}

// New returns an Engine reading datasets from cache.
func New(cache *dataset.Cache) *Engine {
	return &Engine{cache: cache}
}

// Execute loads opts.Dataset and filters it. Errors are *UsageError for a
// missing or unknown dataset name and *DataError for an unreadable one.
func (e *Engine) Execute(opts Options) (document.Document, error) {
	if opts.Dataset == "" {
		return document.Document{}, Usagef("no file specified")
	}

	lines, err := e.cache.Lines(opts.Dataset)
	switch {
	case errors.Is(err, dataset.ErrUnsupported):
		return document.Document{}, &UsageError{Message: err.Error(), Err: err}
	case errors.Is(err, dataset.ErrMissing):
		return document.Document{}, &DataError{Dataset: opts.Dataset, Err: err}
	case err != nil:
		return document.Document{}, err
	}

	log.Debugf("executing: dataset=%s, lines=%d", opts.Dataset, len(lines))
	return Filter(lines, opts), nil
}

// Filter runs the per-line pipeline over lines and returns the selected
// document.
func Filter(lines []string, opts Options) document.Document {
	pattern := opts.EffectivePattern()
	pred := filters.NewPredicate(pattern, opts.Key, opts.Where)
	fields := attrs.Parse(opts.Extract)

	matched := []string{}
	rows := [][]string{}
	for _, line := range lines {
		if !pred.Accept(line) {
			continue
		}
		matched = append(matched, line)

		// Non-record lines yield no row and are never padded.
		if len(fields) > 0 {
			if row, ok := fields.Extract(line); ok {
				rows = append(rows, row)
			}
		}
	}
	log.Debugf("filtered: in=%d, matched=%d, rows=%d", len(lines), len(matched), len(rows))

	if len(fields) > 0 && opts.Table {
		return document.NewTable(fields.Header(), rows)
	}

	if opts.Pretty {
		return document.NewPretty(output.PrettyBlocks(matched))
	}

	// Token sequences are only produced when neither table nor pretty was
	// requested. --table without --extract therefore falls through to lines.
	var tokens [][]tokenize.Token
	if !opts.Table {
		for _, line := range matched {
			tokens = append(tokens, tokenize.Tokenize(line, pattern))
		}
	}

	if len(tokens) > 0 {
		return document.Tokens(tokens)
	}

	return document.Lines(matched)
}
