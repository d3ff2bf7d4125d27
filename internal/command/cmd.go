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

// cmdCommandAction is the action handler for the "cmd" subcommand. The first
// positional argument is the program, the rest are its arguments.
func cmdCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("command required")
	}

	return runWatch(ctx, cmd, source.NewCommand(args[0], args[1:]))
}

// cmdCommandBuilder constructs the cli.Command for "cmd".
func cmdCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cmd",
		Aliases:   []string{"command"},
		Usage:     "execute a command and track changes in the JSON output",
		UsageText: "jsonwatch cmd [options] <command> [arg ...]",
		Flags:     NewWatchFlags("cmd"),
		Action:    cmdCommandAction,
		Metadata:  map[string]any{"meta": m},
	}
}
