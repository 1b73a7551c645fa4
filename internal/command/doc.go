// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command maps an argument vector onto engine options and turns
// every outcome, including failures, into a single document.
package command
