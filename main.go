// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tfctl/jgrep/internal/command"
	"github.com/tfctl/jgrep/internal/config"
	"github.com/tfctl/jgrep/internal/dataset"
	"github.com/tfctl/jgrep/internal/engine"
	"github.com/tfctl/jgrep/internal/log"
	"github.com/tfctl/jgrep/internal/output"
	"github.com/tfctl/jgrep/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion prints the version when --version is the only argument.
// Anywhere else it is an unrecognized option like any other flag.
func handleVersion(args []string, w io.Writer) bool {
	if len(args) == 2 && args[1] == "--version" {
		fmt.Fprintln(w, version.String())
		return true
	}
	return false
}

// processSetOnly expands the first @name argument into the entries of the
// config file's sets.name list. Each entry is a flag optionally followed by
// its value, e.g. "--where level=ERROR service=auth".
func processSetOnly(args []string) []string {
	removeIdx := -1
	set := ""
	for i := 1; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") && len(args[i]) > 1 {
			set = args[i][1:]
			removeIdx = i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	setArgs, err := config.GetStringSlice("sets." + set)
	if err != nil {
		log.Debugf("set not expanded: set=%s, err=%v", set, err)
		return args
	}

	var expanded []string
	for _, entry := range setArgs {
		flag, value, found := strings.Cut(strings.TrimSpace(entry), " ")
		expanded = append(expanded, flag)
		if found {
			expanded = append(expanded, strings.TrimSpace(value))
		}
	}

	result := make([]string, 0, len(args)-1+len(expanded))
	result = append(result, args[:removeIdx]...)
	result = append(result, expanded...)
	result = append(result, args[removeIdx+1:]...)
	log.Debugf("set expanded: set=%s, args=%v", set, result)
	return result
}

// sources returns the built-in sample plus any datasets named in the config
// file.
func sources() []dataset.Source {
	srcs := []dataset.Source{dataset.Sample()}

	paths, err := config.GetStringMap("datasets")
	if err != nil {
		log.Debugf("no configured datasets: err=%v", err)
		return srcs
	}

	return append(srcs, dataset.FromMap(paths)...)
}

// run executes one invocation, writing the document to w, and returns the
// exit code.
func run(args []string, w io.Writer) int {
	if handleVersion(args, w) {
		return 0
	}

	args = processSetOnly(args)

	eng := engine.New(dataset.New(sources()...))
	doc := command.Run(ctx, eng, args)

	if err := output.Emit(w, doc, output.ResolveMode(w)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("emit err: err=%v", err)
		return 2
	}

	if doc.IsError() {
		return 1
	}
	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	return run(args, os.Stdout)
}
