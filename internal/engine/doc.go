// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package engine runs one search over a dataset and selects the single
// output document.
//
// Every line is evaluated by the predicate in file order. Survivors are
// collected and, when extraction fields are configured, reduced to rows.
// The document format is chosen in strict priority: table (extract and
// --table), pretty (--pretty), tokens, then lines when no token sequence was
// produced.
package engine
