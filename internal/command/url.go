// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/jsonwatch/jsonwatch/internal/meta"
	"github.com/jsonwatch/jsonwatch/internal/source"
)

// urlCommandAction is the action handler for the "url" subcommand. Headers
// from the config file come first so repeated -H flags can override them.
func urlCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("exactly one URL required")
	}

	m := cmd.Metadata["meta"].(meta.Meta)

	headers, _ := m.Config.GetStringSlice("headers", nil)
	headers = append(headers, cmd.StringSlice("header")...)

	src := source.NewURL(cmd.Args().First(), cmd.String("user-agent"), headers)

	return runWatch(ctx, cmd, src)
}

// urlCommandBuilder constructs the cli.Command for "url".
func urlCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "url",
		Usage:     "fetch a URL and track changes in the JSON data",
		UsageText: "jsonwatch url [options] <url>",
		Flags: append(NewWatchFlags("url"),
			NewUserAgentFlag("url"),
			&cli.StringSliceFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "custom header in the format \"X-Foo: bar\"",
			},
		),
		Action:   urlCommandAction,
		Metadata: map[string]any{"meta": m},
	}
}
