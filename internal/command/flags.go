// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// Namespace is the config file section holding search defaults.
const Namespace = "search"

// NewSearchFlags returns the flag set. When cfgPath is non-empty, --table and
// --pretty also take their defaults from the config file.
func NewSearchFlags(cfgPath string) []cli.Flag {
	table := &cli.BoolFlag{
		Name:  "table",
		Usage: "render extracted fields as a table",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JGREP_TABLE"),
		),
	}
	pretty := &cli.BoolFlag{
		Name:  "pretty",
		Usage: "pretty print matching lines",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JGREP_PRETTY"),
		),
	}

	if cfgPath != "" {
		table = NameSpacedValueChainFlagFromConfigFile(Namespace, cfgPath, table)
		pretty = NameSpacedValueChainFlagFromConfigFile(Namespace, cfgPath, pretty)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "E",
			Usage: "regular expression to search for",
		},
		&cli.BoolFlag{
			Name:  "i",
			Usage: "case-insensitive pattern",
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "dotted key path that must be present, and match -E when given",
		},
		&cli.StringFlag{
			Name:  "where",
			Usage: "space separated key=value pairs that must all hold",
		},
		&cli.StringFlag{
			Name:  "extract",
			Usage: "comma-separated list of key paths to extract",
		},
		table,
		pretty,
	}
}

// NameSpacedValueChainFlagFromConfigFile adds the namespaced config file key
// (e.g. search.table) to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.BoolFlag) *cli.BoolFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
