// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff computes path-addressed differences between two samples of a
// JSON document and renders them for a terminal.
//
// Array comparison is strictly positional. An element inserted at the front
// of an array therefore reads as a change to every trailing element; that is
// a documented limitation of the positional model, not a bug.
package diff
