// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the optional jsonwatch.yaml file and exposes typed
// getters over dotted key paths, with per-subcommand namespacing.
package config
