// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical flag names.
const (
	FlagCopy     = "copy"
	FlagManifest = "manifest"
	FlagNoLogo   = "nologo"
	FlagOpen     = "open"
	FlagVerbose  = "verbose"
	FlagExtract  = "xm"
	FlagHelp     = "help"
	FlagVersion  = "version"
)

// Usage messages.
const (
	MessageMissingManifest = "Missing manifest file name."
	MessageInvalidOption   = "Invalid option: "
	MessageMissingFileName = "Missing file name."
)

// UsageError is an argument error. It is reported before the logo,
// followed by a hint to run with -?.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// letterFlags maps the first letter of an option to its flag.
var letterFlags = map[rune]string{
	'?': FlagHelp,
	'c': FlagCopy,
	'o': FlagOpen,
	'v': FlagVerbose,
	'm': FlagManifest,
}

// NormalizeArgs rewrites command-line arguments into canonical long flags
// for goos. Anything that is not an option is passed through as a
// positional argument; the manifest option consumes the argument after it
// whatever it looks like, but an empty one counts as missing.
//
// On Windows both '-' and '/' introduce an option. Elsewhere '/' starts an
// absolute path, so a '/' argument is an option only when it spells one
// exactly, such as /v or /nologo.
func NormalizeArgs(args []string, goos string) ([]string, error) {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--"+FlagVersion || arg == "--"+FlagHelp {
			out = append(out, arg)
			continue
		}

		option, ok := optionName(arg, goos)
		if !ok {
			out = append(out, arg)
			continue
		}

		switch option {
		case FlagNoLogo, FlagExtract:
			out = append(out, "--"+option)
			continue
		}

		first, _ := utf8.DecodeRuneInString(option)
		flag, known := letterFlags[unicode.ToLower(first)]
		if option == "" || !known {
			return nil, &UsageError{Message: MessageInvalidOption + option}
		}

		if flag == FlagManifest {
			if i+1 >= len(args) || args[i+1] == "" {
				return nil, &UsageError{Message: MessageMissingManifest}
			}
			i++
			out = append(out, "--"+FlagManifest+"="+args[i])
			continue
		}

		out = append(out, "--"+flag)
	}

	return out, nil
}

// optionName returns the option spelled by arg without its prefix.
func optionName(arg, goos string) (string, bool) {
	switch {
	case strings.HasPrefix(arg, "-"):
		return arg[1:], true
	case strings.HasPrefix(arg, "/"):
		name := arg[1:]
		if goos == "windows" || isExactOption(name) {
			return name, true
		}
	}
	return "", false
}

func isExactOption(name string) bool {
	switch name {
	case FlagNoLogo, FlagExtract, "?", "c", "m", "o", "v", "C", "M", "O", "V":
		return true
	}
	return false
}

// normalize is NormalizeArgs for the running platform.
func normalize(args []string) ([]string, error) {
	return NormalizeArgs(args, runtime.GOOS)
}
