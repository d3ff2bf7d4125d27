// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jsonwatch/jsonwatch/internal/command"
	"github.com/jsonwatch/jsonwatch/internal/log"
	"github.com/jsonwatch/jsonwatch/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-V in the root flag position and
// returns whether it was handled. Later positions belong to subcommands and
// the watched command's own arguments, which must pass through untouched.
func handleVersion(args []string) bool {
	if len(args) > 1 && (args[1] == "--version" || args[1] == "-V") {
		fmt.Println(version.Version)
		return true
	}
	return false
}

// handleNakedCommand appends --help if no subcommand is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

func realMain() int {
	log.Init(0)

	args := handleNakedCommand(os.Args)

	if handleVersion(args) {
		return 0
	}

	// Ctrl-C cancels the watch loop instead of tearing the process down
	// mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
