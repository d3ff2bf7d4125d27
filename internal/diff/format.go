// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsonwatch/jsonwatch/internal/value"
)

// Formatter renders a Result as one line per entry. A single-entry render
// carries no leading or trailing line break so the caller can print it on
// the same line as a timestamp; a multi-entry render joins lines with "\n"
// for the caller to indent under its own timestamp line.
type Formatter struct {
	color   bool
	added   lipgloss.Style
	removed lipgloss.Style
	changed lipgloss.Style
}

// NewFormatter returns a Formatter, colored with the standard diff palette
// when color is enabled.
func NewFormatter(color bool) *Formatter {
	f := &Formatter{color: color}
	if color {
		f.added = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		f.removed = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		f.changed = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	}
	return f
}

// Format renders all entries of r in discovery order.
func (f *Formatter) Format(r Result) string {
	lines := make([]string, 0, r.Len())
	for _, e := range r.Entries() {
		lines = append(lines, f.FormatEntry(e))
	}
	return strings.Join(lines, "\n")
}

// FormatEntry renders one entry as a single line. Values render as compact
// JSON, which keeps control characters escaped. The root path renders empty:
//
//	+ .host: "example.com"
//	- .tags[2]: "beta"
//	.count: 3 -> 4
func (f *Formatter) FormatEntry(e Entry) string {
	path := e.Path.String()

	switch e.Op {
	case Added:
		return f.style(f.added, "+ "+path+": "+value.Compact(e.New))
	case Removed:
		return f.style(f.removed, "- "+path+": "+value.Compact(e.Old))
	default:
		return f.style(f.changed, path+": "+value.Compact(e.Old)+" -> "+value.Compact(e.New))
	}
}

func (f *Formatter) style(st lipgloss.Style, line string) string {
	if !f.color {
		return line
	}
	return st.Render(line)
}

// String renders r without color.
func (r Result) String() string {
	return NewFormatter(false).Format(r)
}
