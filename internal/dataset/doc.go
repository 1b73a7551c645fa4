// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package dataset resolves whitelisted dataset names to their lines.
//
// The whitelist is the set of registered sources. sample.jsonl is compiled
// into the binary and further names may be added from the config file's
// datasets map, each backed by a file on disk. Lines are loaded on first
// request and cached for the life of the process. Nothing is ever evicted.
package dataset
