// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package reveal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/pkg/browser"
)

// DefaultTimeout bounds how long the file manager launch may take.
const DefaultTimeout = 5 * time.Second

// Messages reported when the file manager cannot be started.
const (
	MessageNotFound = "The specified file was not found."
	MessageFailed   = "The shell could not open the containing folder."
)

// openDir opens a directory with the desktop's default handler.
var openDir = func(dir string) error {
	browser.Stdout = io.Discard
	return browser.OpenFile(dir)
}

// Command builds the command that reveals path on goos. It returns nil when
// the platform has no selecting file manager and the containing directory
// should be opened instead.
func Command(ctx context.Context, goos, path string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.CommandContext(ctx, "explorer.exe", "/select,"+path)
	case "darwin":
		return exec.CommandContext(ctx, "open", "-R", path)
	default:
		return nil
	}
}

// Reveal shows path in the file manager. A zero timeout uses DefaultTimeout.
// Failures are reported as *locate.AppError.
func Reveal(ctx context.Context, path string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := logutil.NewLogger("reveal").WithFields("path", path)

	cmd := Command(ctx, runtime.GOOS, path)
	if cmd == nil {
		dir := filepath.Dir(path)
		log.Debug("opening containing directory", "dir", dir)
		if err := openDir(dir); err != nil {
			return classify(err)
		}
		return nil
	}

	log.Debug("launching file manager", "command", cmd.String())
	err := cmd.Run()

	// explorer.exe exits with status 1 even when the window opened.
	var exitErr *exec.ExitError
	if runtime.GOOS == "windows" && errors.As(err, &exitErr) {
		err = nil
	}
	if err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return locate.WrapAppError(err, MessageNotFound)
	}
	return locate.WrapAppError(fmt.Errorf("reveal: %w", err), MessageFailed)
}
