// Package cli implements the findpath command.
//
// Options may be written with a leading '-' or, on Windows, '/'. Single-letter
// options match on their first letter regardless of case, so -v, /V and
// -verbose are equivalent, while -nologo and -xm must be spelled exactly.
// Arguments are rewritten into canonical long flags before cobra parses them;
// see NormalizeArgs.
//
// Run returns the process exit code: 0 on success or when help is shown and
// -1 on any failure.
package cli
