// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jongio/findpath/locate"
	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	BrightRed = "\033[91m"
)

// EnvNoColor disables color when set to any value.
const EnvNoColor = "NO_COLOR"

// Printer writes findpath output to a pair of sinks.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	color bool
}

// New returns a Printer over out and errw. Color is enabled when errw is a
// terminal and NO_COLOR is unset.
func New(out, errw io.Writer) *Printer {
	return &Printer{Out: out, Err: errw, color: supportsColor(errw)}
}

func supportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetColor overrides terminal detection.
func (p *Printer) SetColor(enabled bool) {
	p.color = enabled
}

// Trace returns the sink for verbose search lines.
func (p *Printer) Trace() io.Writer {
	return p.Out
}

// Path prints the formatted path followed by a newline.
func (p *Printer) Path(formatted string) {
	fmt.Fprintln(p.Out, formatted)
}

// Plain prints a line to standard output.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Logo prints the banner. The version line is omitted when ver is empty.
func (p *Printer) Logo(ver, author string) {
	fmt.Fprintln(p.Out, "FindPath Utility")
	if ver != "" {
		fmt.Fprintf(p.Out, "Version %s, ", ver)
	}
	fmt.Fprintf(p.Out, "Written by %s\n\n", author)
}

// Usage reports an argument error followed by the help hint.
func (p *Printer) Usage(binary, message string) {
	fmt.Fprintln(p.Err, p.red(message))
	fmt.Fprintf(p.Err, "\nTry '%s -?' for more help.\n", binary)
}

// Error renders err on standard error. System errors print their code and
// description on a fresh line; application errors print their message.
// Any other error is classified first.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}

	var appErr *locate.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintln(p.Err, p.red(appErr.Message))
		return
	}

	sysErr := locate.Classify(err)
	fmt.Fprintf(p.Err, "\n%s\n", p.red(fmt.Sprintf("%d: %s", uint32(sysErr.Code), sysErr.Description())))
}

func (p *Printer) red(s string) string {
	if !p.color {
		return s
	}
	return BrightRed + s + Reset
}
