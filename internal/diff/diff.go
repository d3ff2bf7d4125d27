// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/jsonwatch/jsonwatch/internal/value"
)

// Op classifies one reported difference.
type Op int

const (
	Added Op = iota
	Removed
	Changed
)

// Entry is one reported difference: a location plus what happened there.
// Old is set for Removed and Changed, New for Added and Changed.
type Entry struct {
	Path Path
	Op   Op
	Old  value.Value
	New  value.Value
}

// Result is the ordered set of differences produced by one comparison.
// Entries appear in discovery order: object keys in old-then-new walk order,
// array elements in index order.
type Result struct {
	entries []Entry
}

// Len returns the number of differences.
func (r Result) Len() int { return len(r.entries) }

// IsEmpty reports whether the comparison found no differences.
func (r Result) IsEmpty() bool { return len(r.entries) == 0 }

// Entries returns the differences in discovery order.
func (r Result) Entries() []Entry { return r.entries }

// Diff compares two optional values, where nil means no value was observed
// (unreadable source or unparsable sample). It is total: any pair of inputs
// produces a Result, never an error.
func Diff(prev, curr value.Value) Result {
	var entries []Entry

	switch {
	case prev == nil && curr == nil:
		// Nothing observed on either side.
	case prev == nil:
		entries = append(entries, Entry{Op: Added, New: curr})
	case curr == nil:
		entries = append(entries, Entry{Op: Removed, Old: prev})
	default:
		entries = compare(nil, prev, curr, entries)
	}

	return Result{entries: entries}
}

func compare(path Path, prev, curr value.Value, out []Entry) []Entry {
	if value.Equal(prev, curr) {
		return out
	}

	// A change of variant invalidates any sub-path comparison, so report the
	// whole value and stop.
	if prev.Kind() != curr.Kind() {
		return append(out, Entry{Path: path, Op: Changed, Old: prev, New: curr})
	}

	switch pv := prev.(type) {
	case value.Object:
		cv := curr.(value.Object)
		for _, m := range pv {
			child := path.child(Field(m.Key))
			if other, ok := cv.Get(m.Key); ok {
				out = compare(child, m.Value, other, out)
			} else {
				out = append(out, Entry{Path: child, Op: Removed, Old: m.Value})
			}
		}
		for _, m := range cv {
			if _, ok := pv.Get(m.Key); !ok {
				out = append(out, Entry{Path: path.child(Field(m.Key)), Op: Added, New: m.Value})
			}
		}
	case value.Array:
		cv := curr.(value.Array)
		n := min(len(pv), len(cv))
		for i := 0; i < n; i++ {
			out = compare(path.child(Index(i)), pv[i], cv[i], out)
		}
		for i := n; i < len(pv); i++ {
			out = append(out, Entry{Path: path.child(Index(i)), Op: Removed, Old: pv[i]})
		}
		for i := n; i < len(cv); i++ {
			out = append(out, Entry{Path: path.child(Index(i)), Op: Added, New: cv[i]})
		}
	default:
		// Scalars of the same kind that are not equal.
		out = append(out, Entry{Path: path, Op: Changed, Old: prev, New: curr})
	}

	return out
}
