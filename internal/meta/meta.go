// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/jsonwatch/jsonwatch/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries the CLI
// arguments, the loaded configuration, and the process context.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
