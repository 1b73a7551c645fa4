// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tokenize splits a JSON line into classified tokens for inline
// highlighting.
//
// The lexer is a three state machine (normal, in-string, escaped) walking the
// raw bytes of the line once. An explicit stack of object/array scopes decides
// whether a string literal sits in key position. Tokens are lossless:
// concatenating their text in order gives back the line minus any trailing
// newline. Quotes are emitted as their own punctuation tokens and escape
// sequences are copied verbatim, never decoded.
//
// Lines that are not JSON objects are returned as a single text token.
//
// When a pattern is supplied, key, string, number and value tokens are split
// further at every match so the matched spans come out as match tokens. An
// invalid pattern simply leaves the tokens unsplit.
package tokenize
