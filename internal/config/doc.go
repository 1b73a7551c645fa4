// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for jgrep's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/jgrep.yaml or $HOME/.config/jgrep.yaml
//   - Windows: %APPDATA%/jgrep.yaml
//
// The JGREP_CFG_FILE environment variable overrides the location. Actual
// resolution otherwise relies on os.UserConfigDir which follows platform
// conventions.
//
// Recognized keys:
//
//	output: text            # json, yaml or text
//	datasets:               # extra whitelisted datasets, name -> file path
//	  app.jsonl: /var/log/app.jsonl
//	search:
//	  table: false          # default for --table
//	  pretty: false         # default for --pretty
//	colors:
//	  key: "#5fafff"
//	  match: "#ff5f87"
package config
