// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/jgrep/internal/config"
	"github.com/tfctl/jgrep/internal/engine"
	"github.com/tfctl/jgrep/internal/log"
)

// InitApp builds the command for one invocation. On success the parsed
// options are stored in opts. Help and version handling are disabled and
// nothing is printed; all outcomes are reported through the returned error.
func InitApp(argv []string, opts *engine.Options) *cli.Command {
	app := &cli.Command{
		Name:                  "jgrep",
		Usage:                 "search and render JSON lines",
		ArgsUsage:             "<dataset>",
		HideHelp:              true,
		HideHelpCommand:       true,
		HideVersion:           true,
		Writer:                io.Discard,
		ErrWriter:             io.Discard,
		Flags:                 NewSearchFlags(config.Path()),
		OnUsageError:          usageErrorHandler(argv),
		EnableShellCompletion: false,
		Action: func(ctx context.Context, c *cli.Command) error {
			name, err := DatasetValidator(c.Args().Slice())
			if err != nil {
				return err
			}

			*opts = engine.Options{
				Pattern:    c.String("E"),
				IgnoreCase: c.Bool("i"),
				Key:        c.String("key"),
				Where:      c.String("where"),
				Extract:    c.String("extract"),
				Table:      c.Bool("table"),
				Pretty:     c.Bool("pretty"),
				Dataset:    name,
			}
			log.Debugf("options parsed: opts=%+v", *opts)
			return nil
		},
	}

	// Make sure flags are sorted for the usage text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}

// ParseArgs maps argv onto engine options. argv[0] is the program name.
func ParseArgs(ctx context.Context, argv []string) (engine.Options, error) {
	if len(argv) == 0 {
		argv = []string{"jgrep"}
	}

	var opts engine.Options
	if err := InitApp(argv[1:], &opts).Run(ctx, argv); err != nil {
		return engine.Options{}, err
	}
	return opts, nil
}
