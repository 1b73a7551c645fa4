// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tfctl/jgrep/internal/document"
	"github.com/tfctl/jgrep/internal/engine"
	"github.com/tfctl/jgrep/internal/log"
)

const (
	// ErrorPrefix starts every error document message.
	ErrorPrefix = "jgrep: error: "
	// UnexpectedPrefix follows ErrorPrefix for errors outside the usage and
	// data taxonomy.
	UnexpectedPrefix = "unexpected: "
)

// Run parses argv, executes the search and returns the resulting document.
// It never fails: errors and panics are converted into error documents.
func Run(ctx context.Context, eng *engine.Engine, argv []string) (doc document.Document) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("recovered: panic=%v", r)
			doc = ErrorDocument(fmt.Errorf("%v", r))
		}
	}()

	opts, err := ParseArgs(ctx, argv)
	if err != nil {
		return ErrorDocument(err)
	}

	doc, err = eng.Execute(opts)
	if err != nil {
		return ErrorDocument(err)
	}

	return doc
}

// ErrorDocument renders err as an error document. Usage and data errors are
// reported as is, anything else is marked unexpected.
func ErrorDocument(err error) document.Document {
	var usage *engine.UsageError
	var data *engine.DataError

	if errors.As(err, &usage) || errors.As(err, &data) {
		log.Debugf("invocation failed: err=%v", err)
		return document.Error(ErrorPrefix + err.Error())
	}

	log.WithError(err).Errorf("unexpected failure")
	return document.Error(ErrorPrefix + UnexpectedPrefix + err.Error())
}
