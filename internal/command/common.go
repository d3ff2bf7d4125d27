// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/jsonwatch/jsonwatch/internal/log"
	"github.com/jsonwatch/jsonwatch/internal/meta"
	"github.com/jsonwatch/jsonwatch/internal/source"
	"github.com/jsonwatch/jsonwatch/internal/watch"
)

// runWatch translates parsed flags into a watch session over src and runs it
// until the change limit or a cancellation.
func runWatch(ctx context.Context, cmd *cli.Command, src source.Sampler) error {
	verbosity := cmd.Count("verbose")
	log.Init(verbosity)

	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("watch starting: args=%v config=%s", m.Args, m.Config.Source)

	cfg := watch.Config{
		Interval:  time.Duration(cmd.Int("interval")) * time.Second,
		Changes:   cmd.Int("changes"),
		NoDate:    cmd.Bool("no-date"),
		NoInitial: cmd.Bool("no-initial-values"),
		Verbosity: verbosity,
		Select:    cmd.String("select"),
		Color:     colorEnabled(cmd),
	}

	if err := watch.New(cfg, src).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// colorEnabled honors an explicit --color setting and otherwise turns color
// on only when stdout is a terminal, so piped output stays clean.
func colorEnabled(cmd *cli.Command) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
