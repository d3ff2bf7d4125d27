// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	awsx "github.com/jsonwatch/jsonwatch/internal/aws"
	"github.com/jsonwatch/jsonwatch/internal/meta"
	"github.com/jsonwatch/jsonwatch/internal/source"
)

// s3CommandAction is the action handler for the "s3" subcommand.
func s3CommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("exactly one S3 URI required")
	}

	var opts []awsx.Option
	if profile := cmd.String("profile"); profile != "" {
		opts = append(opts, awsx.WithProfile(profile))
	}
	if region := cmd.String("region"); region != "" {
		opts = append(opts, awsx.WithRegion(region))
	}

	src, err := source.NewS3(ctx, cmd.Args().First(), opts...)
	if err != nil {
		return err
	}

	return runWatch(ctx, cmd, src)
}

// s3CommandBuilder constructs the cli.Command for "s3".
func s3CommandBuilder(m meta.Meta) *cli.Command {
	profileFlag := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	withYAMLSources("s3", profileFlag.Name, &profileFlag.Sources)

	regionFlag := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region, overriding the shared config chain",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_REGION"),
		),
	}
	withYAMLSources("s3", regionFlag.Name, &regionFlag.Sources)

	return &cli.Command{
		Name:      "s3",
		Usage:     "fetch an S3 object and track changes in the JSON data",
		UsageText: "jsonwatch s3 [options] s3://<bucket>/<key>",
		Flags:     append(NewWatchFlags("s3"), profileFlag, regionFlag),
		Action:    s3CommandAction,
		Metadata:  map[string]any{"meta": m},
	}
}
