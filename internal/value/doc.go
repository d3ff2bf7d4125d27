// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package value models a parsed JSON document as a closed set of variants
// (null, bool, number, string, array, object) with object member order
// preserved from the source text.
package value
