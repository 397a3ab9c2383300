/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's levelled, silenceable logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	styleWarn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleDebug   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var (
	mu        sync.Mutex
	output    io.Writer = os.Stderr
	useColors           = isTerminal(os.Stderr)
	verbose   bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	useColors = isTerminal(w)
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	write(styleWarn, "warning: ", format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	write(styleError, "error: ", format, args...)
}

// Success logs a completion message.
func Success(format string, args ...any) {
	write(styleSuccess, "✓ ", format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	write(lipgloss.NewStyle(), "", format, args...)
}

// Debug logs a message only in verbose mode.
func Debug(format string, args ...any) {
	mu.Lock()
	enabled := verbose
	mu.Unlock()
	if enabled {
		write(styleDebug, "debug: ", format, args...)
	}
}

func write(style lipgloss.Style, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if prefix != "" && useColors {
		prefix = style.Render(prefix)
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
