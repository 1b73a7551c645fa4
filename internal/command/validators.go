// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/jgrep/internal/engine"
)

const undefinedFlagMsg = "flag provided but not defined: -"

// DatasetValidator checks the positional arguments left after flag parsing
// and returns the dataset name. Exactly one is allowed and it must not look
// like a flag.
func DatasetValidator(args []string) (string, error) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			return "", engine.Usagef("unrecognized option '%s'", a)
		}
	}

	switch len(args) {
	case 0:
		return "", engine.Usagef("no file specified")
	case 1:
		return args[0], nil
	default:
		return "", engine.Usagef("too many files specified: %s", args[1])
	}
}

// usageErrorHandler converts flag parsing failures into engine usage errors
// phrased after the offending argument.
func usageErrorHandler(argv []string) cli.OnUsageErrorFunc {
	return func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
		name, found := strings.CutPrefix(err.Error(), undefinedFlagMsg)
		if !found {
			return &engine.UsageError{Message: err.Error(), Err: err}
		}
		return &engine.UsageError{
			Message: "unrecognized option '" + offendingArg(argv, name) + "'",
			Err:     err,
		}
	}
}

// offendingArg finds the argument whose flag name is name. The parser reports
// names with dashes and any =value removed.
func offendingArg(argv []string, name string) string {
	for _, a := range argv {
		a = strings.TrimSpace(a)
		if !strings.HasPrefix(a, "-") {
			continue
		}
		n, _, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if n == name {
			return a
		}
	}
	return "-" + name
}
