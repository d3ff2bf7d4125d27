// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package watch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apexlog "github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays a fixed sequence of samples, repeating the last one.
type scripted struct {
	samples []string
	errs    []error
	i       int
}

func (s *scripted) Sample(_ context.Context) (string, error) {
	idx := s.i
	if idx >= len(s.samples) {
		idx = len(s.samples) - 1
	}
	s.i++

	var err error
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	return s.samples[idx], err
}

func runScripted(t *testing.T, cfg Config, src *scripted) string {
	t.Helper()

	var out bytes.Buffer
	cfg.Out = &out
	cfg.NoDate = true
	cfg.Interval = time.Millisecond

	w := New(cfg, src)
	require.NoError(t, w.Run(context.Background()))

	return out.String()
}

func TestRun_InitialDump(t *testing.T) {
	got := runScripted(t,
		Config{Changes: 1},
		&scripted{samples: []string{`{"a":1}`, `{"a":2}`}},
	)

	assert.Equal(t, "{\n  \"a\": 1\n}\n.a: 1 -> 2\n", got)
}

func TestRun_NoInitialSuppressesDump(t *testing.T) {
	got := runScripted(t,
		Config{Changes: 1, NoInitial: true},
		&scripted{samples: []string{`{"a":1}`, `{"a":2}`}},
	)

	assert.Equal(t, ".a: 1 -> 2\n", got)
}

func TestRun_UnchangedTicksPrintNothing(t *testing.T) {
	got := runScripted(t,
		Config{Changes: 1, NoInitial: true},
		&scripted{samples: []string{`{"a":1}`, `{"a":1}`, `{"a":1}`, `{"a":2}`}},
	)

	assert.Equal(t, ".a: 1 -> 2\n", got)
}

func TestRun_MultiEntryIndented(t *testing.T) {
	got := runScripted(t,
		Config{Changes: 1, NoInitial: true},
		&scripted{samples: []string{`{"a":1,"b":2}`, `{"a":9}`}},
	)

	assert.Equal(t, "    .a: 1 -> 9\n    - .b: 2\n", got)
}

func TestRun_SamplingErrorSkipsTick(t *testing.T) {
	src := &scripted{
		samples: []string{`{"a":1}`, "", `{"a":2}`},
		errs:    []error{nil, errors.New("boom"), nil},
	}

	got := runScripted(t, Config{Changes: 1, NoInitial: true}, src)

	// The failed tick neither prints a removal nor drops the previous value.
	assert.Equal(t, ".a: 1 -> 2\n", got)
}

func TestRun_ParseErrorSkipsTick(t *testing.T) {
	src := &scripted{samples: []string{`{"a":1}`, "garbage{", `{"a":2}`}}

	got := runScripted(t, Config{Changes: 1, NoInitial: true}, src)

	assert.Equal(t, ".a: 1 -> 2\n", got)
}

func TestRun_BlankSampleIsRemoval(t *testing.T) {
	src := &scripted{samples: []string{`{"a":1}`, "  \n"}}

	got := runScripted(t, Config{Changes: 1, NoInitial: true}, src)

	assert.Equal(t, `- : {"a":1}`+"\n", got)
}

func TestRun_SelectNarrowsSample(t *testing.T) {
	src := &scripted{samples: []string{
		`{"data": {"n": 1}, "noise": 1}`,
		`{"data": {"n": 2}, "noise": 2}`,
	}}

	got := runScripted(t, Config{Changes: 1, NoInitial: true, Select: "data"}, src)

	assert.Equal(t, ".n: 1 -> 2\n", got)
}

func TestRun_ChangeLimitCountsDiffsNotTicks(t *testing.T) {
	src := &scripted{samples: []string{
		`{"a":1}`, `{"a":1}`, `{"a":2}`, `{"a":2}`, `{"a":3}`,
	}}

	got := runScripted(t, Config{Changes: 2, NoInitial: true}, src)

	assert.Equal(t, ".a: 1 -> 2\n.a: 2 -> 3\n", got)
}

func TestRun_Timestamps(t *testing.T) {
	var out bytes.Buffer
	w := New(Config{
		Changes:   1,
		NoInitial: true,
		Interval:  time.Millisecond,
		Out:       &out,
	}, &scripted{samples: []string{`{"a":1}`, `{"a":2}`}})

	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	require.NoError(t, w.Run(context.Background()))

	// A single entry shares the timestamp's line.
	assert.Equal(t, "2026-08-30T12:00:00+0000 .a: 1 -> 2\n", out.String())
}

func TestRun_TimestampOwnLineForMultipleEntries(t *testing.T) {
	var out bytes.Buffer
	w := New(Config{
		Changes:   1,
		NoInitial: true,
		Interval:  time.Millisecond,
		Out:       &out,
	}, &scripted{samples: []string{`{"a":1,"b":2}`, `{"a":9}`}})

	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	require.NoError(t, w.Run(context.Background()))

	assert.Equal(t, "2026-08-30T12:00:00+0000\n    .a: 1 -> 9\n    - .b: 2\n", out.String())
}

// collectDebugLogs routes apex output into a memory handler for the test.
func collectDebugLogs(t *testing.T) *memory.Handler {
	t.Helper()

	mem := memory.New()
	apexlog.SetHandler(mem)
	apexlog.SetLevel(apexlog.DebugLevel)
	t.Cleanup(func() {
		apexlog.SetHandler(discard.New())
	})

	return mem
}

func TestRun_InitialInputDumpFollowsNoInitial(t *testing.T) {
	mem := collectDebugLogs(t)

	runScripted(t,
		Config{Changes: 1, NoInitial: true, Verbosity: 2},
		&scripted{samples: []string{`{"a":1}`, `{"a":2}`}},
	)

	// Only the steady-state tick dumps its input; the initial sample's dump
	// is suppressed along with the initial values.
	var dumps int
	for _, e := range mem.Entries {
		if strings.Contains(e.Message, "input data") {
			dumps++
		}
	}
	assert.Equal(t, 1, dumps)
}

func TestRun_InitialInputDumpedByDefault(t *testing.T) {
	mem := collectDebugLogs(t)

	runScripted(t,
		Config{Changes: 1, Verbosity: 2},
		&scripted{samples: []string{`{"a":1}`, `{"a":2}`}},
	)

	var dumps int
	for _, e := range mem.Entries {
		if strings.Contains(e.Message, "input data") {
			dumps++
		}
	}
	assert.Equal(t, 2, dumps)
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w := New(Config{Interval: time.Millisecond, NoInitial: true, NoDate: true, Out: &bytes.Buffer{}},
		&scripted{samples: []string{`{"a":1}`}})

	err := w.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEscapeTerminal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"newline and tab pass", "a\n\tb", "a\n\tb"},
		{"bell escaped", "a\x07b", `a\u{7}b`},
		{"escape char escaped", "a\x1bb", `a\u{1b}b`},
		{"delete escaped", "a\x7fb", `a\u{7f}b`},
		{"carriage return escaped", "a\rb", `a\u{d}b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeTerminal(tt.input))
		})
	}
}
