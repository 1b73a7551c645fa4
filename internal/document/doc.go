// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document defines the single tagged result of a jgrep invocation.
// A Document is either an error or a result carrying exactly one of the
// lines, tokens, table or pretty payloads. Documents are built only through
// the constructors in this package.
package document
