// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

const timestampFormat = "2006-01-02T15:04:05-0700"

// Init sets up Apex with a custom handler and a level derived from the
// verbose flag count: 0 suppresses everything below fatal, 1 shows errors,
// 2 and up shows debug (including raw input dumps). The JSONWATCH_LOG env
// variable overrides the flag when set.
func Init(verbosity int) {
	var apexLevel log.Level
	switch {
	case verbosity <= 0:
		apexLevel = log.FatalLevel
	case verbosity == 1:
		apexLevel = log.ErrorLevel
	default:
		apexLevel = log.DebugLevel
	}

	switch strings.ToLower(os.Getenv("JSONWATCH_LOG")) {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	}

	log.SetHandler(&stderrHandler{})
	log.SetLevel(apexLevel)
}

// stderrHandler writes "[LEVEL timestamp] message" lines to stderr. Stdout
// is reserved for diff output, which callers may be piping elsewhere.
type stderrHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *stderrHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format(timestampFormat)
	fmt.Fprintf(os.Stderr, "[%s %s] %s\n", strings.ToUpper(e.Level.String()), timestamp, e.Message)
	return nil
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
