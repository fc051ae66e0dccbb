/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for the
// MCP server. Warnings are colored when writing to a terminal.
package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	verbose bool
	warnTag = plainTag
)

const plainTag = "warning: "

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
	warnTag = plainTag
	if isTerminal(w) {
		warnTag = color.New(color.FgYellow, color.Bold).Sprint("warning:") + " "
	}
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf(warnTag+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf(format, args...)
}

// Debug logs a message only in verbose mode.
func Debug(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		logger.Printf(format, args...)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) && !color.NoColor
}
