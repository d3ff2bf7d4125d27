// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/dustin/go-humanize"
)

// MaxBodySize caps how much a sampler reads from a remote payload.
const MaxBodySize = 128 * 1024 * 1024

// Sampler produces one raw text sample per polling tick. A failed tick
// returns an error and degrades that tick to "no value"; it never ends the
// watch session.
type Sampler interface {
	Sample(ctx context.Context) (string, error)
}

// Command samples by running a program and capturing its stdout.
type Command struct {
	Name string
	Args []string
}

// NewCommand returns a Command sampler.
func NewCommand(name string, args []string) *Command {
	return &Command{Name: name, Args: args}
}

// Sample runs the program and returns its stdout. A non-zero exit status is
// tolerated: whatever the program wrote to stdout is still the sample. Only
// a failure to start the program is an error. An empty program name yields
// an empty sample.
func (c *Command) Sample(ctx context.Context) (string, error) {
	if c.Name == "" {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to run %s: %w", c.Name, err)
		}
	}

	return stdout.String(), nil
}

// readCapped drains r up to limit bytes and errors beyond it, so a runaway
// endpoint cannot exhaust memory.
func readCapped(r io.Reader, limit int64) (string, error) {
	var buf bytes.Buffer

	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if n > limit {
		return "", fmt.Errorf("response exceeds the %s limit", humanize.IBytes(uint64(limit)))
	}

	return buf.String(), nil
}
