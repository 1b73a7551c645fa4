// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package record turns a single JSON-lines entry into a Record and resolves
// dot-separated key paths against it.
//
// A line is a Record only when it is valid JSON whose top level is an object.
// Anything else (garbage, arrays, bare scalars) is "not a record" and all
// callers treat those lines the same way.
//
// Key paths walk nested objects one segment at a time. A missing key, a null
// value or a non-object intermediate all resolve to absent; resolution never
// fails loudly. Array indexing is deliberately not supported.
package record
