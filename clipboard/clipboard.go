// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package clipboard copies text to the system clipboard.
//
// It wraps github.com/atotto/clipboard, which needs xclip, xsel or
// wl-clipboard on Linux and BSD. Where no backend exists Copy fails with a
// *locate.AppError rather than silently doing nothing.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
)

// MessageUnavailable is reported when the platform has no clipboard backend.
const MessageUnavailable = "The clipboard is not available on this system."

// writeAll is replaced in tests.
var writeAll = clipboard.WriteAll

// Available reports whether a clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the clipboard.
func Copy(text string) error {
	if !Available() {
		return locate.NewAppError("%s", MessageUnavailable)
	}
	if err := writeAll(text); err != nil {
		return locate.WrapAppError(err, fmt.Sprintf("Unable to copy to the clipboard: %v.", err))
	}
	logutil.NewLogger("clipboard").Debug("copied to clipboard", "length", len(text))
	return nil
}
