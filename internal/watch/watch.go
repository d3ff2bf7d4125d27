// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jsonwatch/jsonwatch/internal/diff"
	"github.com/jsonwatch/jsonwatch/internal/log"
	"github.com/jsonwatch/jsonwatch/internal/source"
	"github.com/jsonwatch/jsonwatch/internal/value"
)

// TimestampFormat matches chrono's %Y-%m-%dT%H:%M:%S%z.
const TimestampFormat = "2006-01-02T15:04:05-0700"

// Config controls one watch session.
type Config struct {
	Interval  time.Duration // polling interval, default 2s
	Changes   int           // stop after this many changes, 0 = unlimited
	NoDate    bool          // suppress the timestamp prefix
	NoInitial bool          // suppress the initial pretty dump
	Verbosity int           // 1 = errors, 2+ = raw input dumps
	Select    string        // optional gjson path narrowing each sample
	Color     bool          // colored diff lines
	Out       io.Writer     // defaults to stdout
}

// Watcher owns the previous-value slot and the printing contract. The diff
// engine itself is stateless; the Watcher feeds it once per tick.
type Watcher struct {
	cfg  Config
	src  source.Sampler
	fmtr *diff.Formatter
	prev value.Value
	now  func() time.Time
}

// New returns a Watcher over src.
func New(cfg Config, src source.Sampler) *Watcher {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	return &Watcher{
		cfg:  cfg,
		src:  src,
		fmtr: diff.NewFormatter(cfg.Color),
		now:  time.Now,
	}
}

// Run polls until ctx is canceled or the change limit is reached. Sampling
// and parse failures degrade the tick and never end the session.
func (w *Watcher) Run(ctx context.Context) error {
	raw, err := w.src.Sample(ctx)
	if err != nil {
		log.Errorf("%v", err)
		raw = ""
	}

	w.prev, _ = w.parse(raw)
	if !w.cfg.NoInitial {
		w.debugInput(raw)
		if w.prev != nil {
			fmt.Fprintln(w.cfg.Out, value.Pretty(w.prev))
		}
	}

	changes := 0
	for {
		if w.cfg.Changes > 0 && changes >= w.cfg.Changes {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.cfg.Interval):
		}

		raw, err := w.src.Sample(ctx)
		if err != nil {
			log.Errorf("%v", err)
			continue
		}
		w.debugInput(raw)

		// A parse failure on non-blank input skips the tick without touching
		// the previous value, so a transiently garbled payload does not read
		// as a removal followed by an addition.
		curr, ok := w.parse(raw)
		if !ok {
			continue
		}

		d := diff.Diff(w.prev, curr)
		w.prev = curr
		if d.IsEmpty() {
			continue
		}

		changes++
		w.print(d)
	}
}

// parse narrows the sample to the selected path when configured, then
// parses it. Blank input is a valid "no value" sample; unparsable input
// reports false.
func (w *Watcher) parse(raw string) (value.Value, bool) {
	if w.cfg.Select != "" {
		raw = value.Select(raw, w.cfg.Select)
	}

	v, err := value.Parse(raw)
	if err != nil {
		log.Errorf("JSON parsing error: %v", err)
		return nil, false
	}
	return v, true
}

// print renders one non-empty diff per the count-driven contract: a single
// entry shares the timestamp's line, several entries are indented under it.
func (w *Watcher) print(d diff.Result) {
	text := w.fmtr.Format(d)

	if !w.cfg.NoDate {
		ts := w.now().Format(TimestampFormat)
		if d.Len() == 1 {
			fmt.Fprintf(w.cfg.Out, "%s %s\n", ts, text)
			return
		}
		fmt.Fprintln(w.cfg.Out, ts)
	}

	if d.Len() == 1 {
		fmt.Fprintln(w.cfg.Out, text)
		return
	}
	fmt.Fprintln(w.cfg.Out, "    "+strings.ReplaceAll(text, "\n", "\n    "))
}

// debugInput dumps the raw sample at high verbosity, escaped so control
// characters cannot corrupt the terminal.
func (w *Watcher) debugInput(raw string) {
	if w.cfg.Verbosity < 2 {
		return
	}

	escaped := escapeTerminal(raw)
	if strings.Contains(strings.TrimRight(raw, "\n"), "\n") {
		log.Debugf("multiline input data:\n%s", strings.TrimRight(escaped, "\n"))
	} else {
		log.Debugf("input data: %s", strings.TrimRight(escaped, "\n"))
	}
}

// escapeTerminal renders control characters other than newline and tab as
// \u{hex} escapes.
func escapeTerminal(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, ch := range input {
		switch {
		case ch == '\n' || ch == '\t':
			b.WriteRune(ch)
		case ch < 0x20 || ch == 0x7f || (ch >= 0x80 && ch <= 0x9f):
			fmt.Fprintf(&b, "\\u{%x}", ch)
		default:
			b.WriteRune(ch)
		}
	}

	return b.String()
}
