package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// CaptureOutput runs fn with os.Stdout redirected to a pipe and returns
// what it wrote. os.Stdout is restored before returning. An error from fn
// is logged, not failed, since callers usually assert on it separately
// through the output.
//
//	out := testutil.CaptureOutput(t, func() error {
//	    return run([]string{"-nologo", "notepad"})
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	if err := fn(); err != nil {
		t.Logf("Function returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}

	return <-done
}

// WriteFiles creates each slash-separated path on fsys as a small
// executable file, creating parent directories as needed.
//
// Example:
//
//	fsys := afero.NewMemMapFs()
//	testutil.WriteFiles(t, fsys, "/tools/notepad.EXE", "/app/my tool.exe")
func WriteFiles(t *testing.T, fsys afero.Fs, paths ...string) {
	t.Helper()
	for _, path := range paths {
		path = filepath.FromSlash(path)
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", path, err)
		}
		if err := afero.WriteFile(fsys, path, []byte("x"), 0o755); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

// JoinList joins dirs with the platform's PATH list separator.
func JoinList(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}
