// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters decides which lines survive a search.
//
// Three independent checks are combined by conjunction, and a check that was
// not requested is satisfied automatically:
//
//   - Pattern: a regular expression searched anywhere in the raw line.
//   - Key: a dot-separated key path that must resolve to a non-null value in
//     the line's JSON object. When a pattern is also given, the stringified
//     value must match it as well.
//   - Where: whitespace separated key=value pairs, all of which must hold.
//
// Where Clauses:
//
// Each token is split at its first '='. The left side is a key path and the
// right side a literal compared to the stringified value with plain string
// equality. There is no negation, no ordering and no disjunction. A token
// without '=' makes the whole clause unsatisfiable. Absent and null values
// compare as "None".
//
//   - "level=ERROR" : level is exactly the string ERROR
//   - "level=ERROR http.status=503" : both hold
//   - "n=2" : matches {"n":2} but not {"n":2.0}
//
// Failure Policy:
//
// Nothing here returns an error. An invalid pattern matches no line and a
// line that is not a JSON object fails every key and where check.
package filters
