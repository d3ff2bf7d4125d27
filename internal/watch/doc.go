// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package watch drives the polling loop: sample the source, parse, diff
// against the previous sample, and print what changed under a timestamp.
package watch
