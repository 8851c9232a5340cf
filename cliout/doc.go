// Package cliout renders findpath's console output.
//
// A Printer owns the standard output and standard error sinks for one
// invocation. Standard output carries the resolved path, verbose trace
// lines, the logo and help; standard error carries usage and resolution
// errors. Nothing in this package writes to os.Stdout directly, so tests
// capture output with plain buffers.
//
// # Basic Usage
//
//	p := cliout.New(os.Stdout, os.Stderr)
//	p.Logo("1.0.0.0", "Atif Aziz")
//	p.Path(locate.QuotePath(path))
//
// # Errors
//
// Error renders a *locate.SystemError as a blank line followed by
// "<code>: <description>" and a *locate.AppError as its message alone:
//
//	p.Error(err)
//
// # Color
//
// Errors are colored red when standard error is a terminal (checked with
// golang.org/x/term) and NO_COLOR is unset. Standard output is never
// colored so the path can be captured by scripts.
package cliout
