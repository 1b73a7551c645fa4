// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output pretty prints records and emits documents as json, yaml or
// styled text.
package output
