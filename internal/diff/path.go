// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either an object field or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Field returns an object-traversal segment.
func Field(name string) Segment {
	return Segment{Key: name}
}

// Index returns an array-traversal segment.
func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Path addresses one location in a value tree. The empty Path is the root.
type Path []Segment

// child returns a new Path extended by s. The receiver's backing array is
// never shared with the result, so sibling branches of the recursion cannot
// clobber each other's segments.
func (p Path) child(s Segment) Path {
	c := make(Path, len(p), len(p)+1)
	copy(c, p)
	return append(c, s)
}

// String renders the path as ".field[index].field". The root path renders
// as the empty string.
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		} else {
			b.WriteByte('.')
			b.WriteString(s.Key)
		}
	}
	return b.String()
}
