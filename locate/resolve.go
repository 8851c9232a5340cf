// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package locate

import (
	"errors"
	"fmt"
	"io"

	"github.com/jongio/findpath/logutil"
)

// Request describes one resolution.
type Request struct {
	// FileName is the name to locate. It may carry its own extension.
	FileName string
	// Extensions are tried in order after the unmodified name fails.
	// Only the first MaxExtensions entries are used.
	Extensions []string
	// Verbose writes a line to the trace sink before each probe.
	Verbose bool
}

// ExplicitExtension reports whether FileName already carries an extension,
// in which case fallback extensions are not appended.
func (r Request) ExplicitExtension() bool {
	return HasExtension(r.FileName)
}

// Resolver runs the extension fallback loop over a Prober.
// A Resolver is not safe for concurrent use.
type Resolver struct {
	prober *Prober
	trace  io.Writer
	probes int
	log    *logutil.ComponentLogger
}

// NewResolver returns a Resolver that searches with searcher and writes
// verbose trace lines to trace. A nil trace discards them.
func NewResolver(searcher Searcher, trace io.Writer) *Resolver {
	if trace == nil {
		trace = io.Discard
	}
	return &Resolver{
		prober: NewProber(searcher),
		trace:  trace,
		log:    logutil.NewLogger("locate").WithOperation("resolve"),
	}
}

// Probes returns the number of probes made by the last call to Resolve.
func (r *Resolver) Probes() int {
	return r.probes
}

// Resolve returns the absolute path of the first match for req.
//
// The unmodified file name is probed first, then each extension in order.
// A file-not-found result moves on to the next extension; any other error
// is returned immediately. When every extension has been tried the last
// file-not-found error is returned.
func (r *Resolver) Resolve(req Request) (string, error) {
	r.probes = 0
	if req.FileName == "" {
		return "", NewSystemError(CodeInvalidParameter)
	}

	exts := LimitExtensions(req.Extensions)
	extension := ""
	r.log.Debug("resolving", "file", req.FileName,
		"explicitExtension", req.ExplicitExtension(), "extensions", len(exts))

	for index := -1; ; {
		if req.Verbose {
			fmt.Fprintf(r.trace, "Searching for %s%s\n", req.FileName, extension)
		}
		r.log.Debug("probing", "file", req.FileName, "extension", extension, "attempt", r.probes+1)

		r.probes++
		path, err := r.prober.Probe(req.FileName, extension)
		if err == nil {
			r.log.Debug("resolved", "path", path, "probes", r.probes)
			return path, nil
		}

		var sysErr *SystemError
		if !errors.As(err, &sysErr) || !sysErr.Recoverable() {
			return "", err
		}

		index++
		if index >= len(exts) {
			return "", err
		}
		extension = exts[index]
	}
}
