// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package reveal

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jongio/findpath/locate"
)

func TestCommand(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join("dir", "my file.exe")

	tests := []struct {
		goos     string
		wantNil  bool
		wantArgs []string
	}{
		{goos: "windows", wantArgs: []string{"/select," + path}},
		{goos: "darwin", wantArgs: []string{"-R", path}},
		{goos: "linux", wantNil: true},
		{goos: "freebsd", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd := Command(ctx, tt.goos, path)
			if tt.wantNil {
				if cmd != nil {
					t.Fatalf("Command(%q) = %v, want nil", tt.goos, cmd.Args)
				}
				return
			}
			if cmd == nil {
				t.Fatalf("Command(%q) = nil", tt.goos)
			}
			got := cmd.Args[1:]
			if len(got) != len(tt.wantArgs) {
				t.Fatalf("args = %q, want %q", got, tt.wantArgs)
			}
			for i := range got {
				if got[i] != tt.wantArgs[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestRevealOpensContainingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("platform uses a selecting file manager")
	}

	var opened string
	saved := openDir
	openDir = func(dir string) error {
		opened = dir
		return nil
	}
	t.Cleanup(func() { openDir = saved })

	path := filepath.Join(t.TempDir(), "tool")
	if err := Reveal(context.Background(), path, 0); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if opened != filepath.Dir(path) {
		t.Errorf("opened %q, want %q", opened, filepath.Dir(path))
	}
}

func TestRevealFailureIsAppError(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("platform uses a selecting file manager")
	}

	saved := openDir
	openDir = func(string) error { return exec.ErrNotFound }
	t.Cleanup(func() { openDir = saved })

	err := Reveal(context.Background(), "/x/y", 0)
	var appErr *locate.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Reveal() error = %v, want *locate.AppError", err)
	}
	if appErr.Message != MessageNotFound {
		t.Errorf("Message = %q, want %q", appErr.Message, MessageNotFound)
	}
}

func TestClassify(t *testing.T) {
	err := classify(errors.New("boom"))
	var appErr *locate.AppError
	if !errors.As(err, &appErr) || appErr.Message != MessageFailed {
		t.Errorf("classify() = %v, want %q", err, MessageFailed)
	}
}
