// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"fmt"
	"strings"
)

// HelpData is the environment-specific content of the help screen.
type HelpData struct {
	// Binary is the name the program was invoked as.
	Binary string
	// Order describes each step of the search order.
	Order []string
	// PathEntries are the entries of PATH, in order.
	PathEntries []string
	// PathExt is the raw PATHEXT value.
	PathExt string
}

// Options describes the command-line options, in the order they are listed.
var Options = [][2]string{
	{"c", "Copy path to the clipboard."},
	{"m", "Search using dependencies in <manifest>."},
	{"nologo", "Suppress logo."},
	{"o", "Open containing folder in the file manager."},
	{"v", "Verbose mode."},
	{"xm", "Extract manifest from PE image."},
	{"?", "Show this help."},
}

// Help prints the usage screen.
func (p *Printer) Help(h HelpData) {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s [-c] [-m <manifest>] [-nologo] [-o] [-v] [-xm] [-?]\n", h.Binary)
	b.WriteString("       <filename>\n\n")
	b.WriteString("Searches for the specified file in the following directories,\n")
	b.WriteString("in the following sequence:\n\n")
	for i, step := range h.Order {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString("\nPATH contains the following directories:\n\n")
	for _, entry := range h.PathEntries {
		if entry == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s\n", entry)
	}

	b.WriteString("\nIf the file indicated in <filename> is not found then a search\n")
	b.WriteString("is conducted with the extensions from PATHEXT appended to\n")
	b.WriteString("<filename> each time, where:\n")
	fmt.Fprintf(&b, "\n    PATHEXT = %s\n", h.PathExt)
	b.WriteString("\nThe left-to-right order of extensions in PATHEXT is significant.\n\n")

	b.WriteString("Options:\n\n")
	for _, opt := range Options {
		fmt.Fprintf(&b, "%-6s - %s\n", opt[0], opt[1])
	}

	fmt.Fprint(p.Out, b.String())
}
