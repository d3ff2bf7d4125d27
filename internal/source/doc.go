// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source provides the samplers a watch session polls: a command's
// stdout, an HTTP URL, or an S3 object. Each produces one raw text sample
// per tick; parsing and diffing happen downstream.
package source
