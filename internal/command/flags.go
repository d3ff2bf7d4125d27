// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/jsonwatch/jsonwatch/internal/config"
)

// NewWatchFlags builds the flag set every data-source subcommand shares.
// ns is the subcommand name used to namespace config file lookups.
func NewWatchFlags(ns string) []cli.Flag {
	intervalFlag := &cli.IntFlag{
		Name:    "interval",
		Aliases: []string{"n"},
		Usage:   "polling interval in seconds",
		Value:   2,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JSONWATCH_INTERVAL"),
		),
	}
	withYAMLSources(ns, "interval", &intervalFlag.Sources)

	return []cli.Flag{
		intervalFlag,
		&cli.IntFlag{
			Name:    "changes",
			Aliases: []string{"c"},
			Usage:   "exit after a number of changes",
		},
		&cli.BoolFlag{
			Name:        "no-date",
			Aliases:     []string{"D"},
			Usage:       "don't print date and time for each diff",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "no-initial-values",
			Aliases:     []string{"I"},
			Usage:       "don't print initial JSON values",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "verbose mode ('-v' for errors, '-vv' for input data and errors)",
			Config:      cli.BoolConfig{Count: new(int)},
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "color",
			Usage:       "colored diff output (defaults to on when stdout is a terminal)",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "select",
			Aliases: []string{"s"},
			Usage:   "dot path narrowing each sample before diffing",
		},
	}
}

// NewUserAgentFlag constructs the "user-agent" flag for the url command,
// sourced from the environment and the config file.
func NewUserAgentFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "user-agent",
		Aliases: []string{"A"},
		Usage:   "custom User-Agent string",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JSONWATCH_USER_AGENT"),
		),
	}
	withYAMLSources(ns, flag.Name, &flag.Sources)

	return flag
}

// withYAMLSources appends namespaced and global config file sources to a
// flag's Sources chain. Nothing is appended when no config file exists.
func withYAMLSources(ns string, name string, sources *cli.ValueSourceChain) {
	path := config.File()
	if path == "" {
		return
	}

	if ns != "" {
		sources.Chain = append(sources.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	sources.Chain = append(sources.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
