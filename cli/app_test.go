// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/findpath/cliout"
	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/jongio/findpath/mcptool"
	"github.com/jongio/findpath/pathutil"
	"github.com/jongio/findpath/testutil"
	"github.com/jongio/findpath/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var p = filepath.FromSlash

type harness struct {
	app      *App
	fs       afero.Fs
	out      *bytes.Buffer
	err      *bytes.Buffer
	copied   []string
	revealed []string
}

func newHarness(t *testing.T, files ...string) *harness {
	t.Helper()
	h := &harness{
		fs:  afero.NewMemMapFs(),
		out: &bytes.Buffer{},
		err: &bytes.Buffer{},
	}
	testutil.WriteFiles(t, h.fs, files...)
	require.NoError(t, h.fs.MkdirAll(p("/work"), 0o755))

	h.app = &App{
		Binary: "findpath",
		Env: pathutil.StaticEnvironment{
			Vars: map[string]string{
				pathutil.EnvPath:    p("/tools"),
				pathutil.EnvPathExt: ".COM;.EXE;.BAT",
			},
			Dir:    p("/work"),
			ExeDir: p("/app"),
		},
		Fs:   h.fs,
		Out:  cliout.New(h.out, h.err),
		Info: &version.Info{Name: "findpath", Version: "1.0.0", Author: "Someone"},
		NewSearcher: func(env pathutil.Environment, extra ...string) locate.Searcher {
			return pathutil.NewFSSearcher(h.fs, env, extra...)
		},
		Copy: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
		Reveal: func(_ context.Context, path string) error {
			h.revealed = append(h.revealed, path)
			return nil
		},
	}
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.Run(context.Background(), args)
}

const logo = "FindPath Utility\nVersion 1.0.0, Written by Someone\n\n"

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments", nil, "Missing file name."},
		{"only options", []string{"-v", "-nologo"}, "Missing file name."},
		{"invalid option", []string{"-z", "x"}, "Invalid option: z"},
		{"missing manifest", []string{"x", "-m"}, "Missing manifest file name."},
		{"empty manifest", []string{"-nologo", "-m", "", "notepad"}, "Missing manifest file name."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			assert.Equal(t, ExitFailure, h.run(tt.args...))
			assert.Empty(t, h.out.String(), "no logo before usage errors")
			assert.Equal(t, tt.want+"\n\nTry 'findpath -?' for more help.\n", h.err.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitSuccess, h.run("-?"))

	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, logo), out)
	assert.Contains(t, out, "Usage: findpath [-c] [-m <manifest>]")
	assert.Contains(t, out, "1. The directory from which the application loaded.\n")
	assert.Contains(t, out, "    "+p("/tools")+"\n")
	assert.Contains(t, out, "PATHEXT = .COM;.EXE;.BAT")
	assert.Empty(t, h.err.String())
}

func TestRunHelpWithoutLogo(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitSuccess, h.run("-nologo", "-?"))
	assert.NotContains(t, h.out.String(), "FindPath Utility")
	assert.Contains(t, h.out.String(), "Usage: findpath")
}

func TestRunHelpIgnoresFileName(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitSuccess, h.run("-?", "nope"))
	assert.Contains(t, h.out.String(), "Usage: findpath")
}

func TestRunFound(t *testing.T) {
	h := newHarness(t, "/tools/notepad.EXE")

	assert.Equal(t, ExitSuccess, h.run("notepad"))
	assert.Equal(t, logo+p("/tools/notepad.EXE")+"\n", h.out.String())
	assert.Empty(t, h.err.String())
}

func TestRunFoundNoLogo(t *testing.T) {
	h := newHarness(t, "/app/tool.exe")

	assert.Equal(t, ExitSuccess, h.run("-nologo", "tool.exe"))
	assert.Equal(t, p("/app/tool.exe")+"\n", h.out.String())
}

func TestRunLastFileNameWins(t *testing.T) {
	h := newHarness(t, "/app/b.exe")

	assert.Equal(t, ExitSuccess, h.run("-nologo", "a.exe", "b.exe"))
	assert.Equal(t, p("/app/b.exe")+"\n", h.out.String())
}

func TestRunVerbose(t *testing.T) {
	h := newHarness(t, "/tools/notepad.EXE")

	assert.Equal(t, ExitSuccess, h.run("-nologo", "-v", "notepad"))
	want := "Searching for notepad\n" +
		"Searching for notepad.COM\n" +
		"Searching for notepad.EXE\n" +
		p("/tools/notepad.EXE") + "\n"
	assert.Equal(t, want, h.out.String())
}

func TestRunDebugLogsSearchOrder(t *testing.T) {
	t.Setenv(logutil.EnvDebug, "")
	h := newHarness(t, "/tools/notepad.EXE")

	var logs bytes.Buffer
	logutil.SetupLoggerWithWriter(&logs, false, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	require.Equal(t, ExitSuccess, h.run("-nologo", "notepad"))
	assert.NotContains(t, logs.String(), "search order")

	logutil.SetupLoggerWithWriter(&logs, true, false)
	require.Equal(t, ExitSuccess, h.run("-nologo", "notepad"))
	assert.Contains(t, logs.String(), `msg="search order"`)
	assert.Contains(t, logs.String(), "component=cli")
}

func TestRunNotFound(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, ExitFailure, h.run("-nologo", "nope"))
	assert.Empty(t, h.out.String())

	sysErr := locate.NewSystemError(locate.CodeFileNotFound)
	assert.Equal(t, fmt.Sprintf("\n%d: %s\n", uint32(sysErr.Code), sysErr.Description()), h.err.String())
}

func TestRunCopyAndReveal(t *testing.T) {
	h := newHarness(t, "/app/my tool.exe")

	assert.Equal(t, ExitSuccess, h.run("-nologo", "-c", "-o", "my tool.exe"))

	raw := p("/app/my tool.exe")
	assert.Equal(t, `"`+raw+`"`+"\n", h.out.String())
	assert.Equal(t, []string{`"` + raw + `"`}, h.copied, "the formatted path is copied")
	assert.Equal(t, []string{raw}, h.revealed, "the raw path is revealed")
}

func TestRunCopyFailure(t *testing.T) {
	h := newHarness(t, "/app/tool.exe")
	h.app.Copy = func(string) error { return locate.NewAppError("The clipboard is busy.") }

	assert.Equal(t, ExitFailure, h.run("-nologo", "-c", "-o", "tool.exe"))
	assert.Equal(t, p("/app/tool.exe")+"\n", h.out.String(), "the path is printed before actions run")
	assert.Equal(t, "The clipboard is busy.\n", h.err.String())
	assert.Empty(t, h.revealed, "later actions are skipped")
}

func TestRunExtractManifestNotPE(t *testing.T) {
	h := newHarness(t, "/app/tool.exe")

	assert.Equal(t, ExitFailure, h.run("-nologo", "-xm", "tool.exe"))
	assert.Contains(t, h.err.String(), "is not a PE image.")

	exists, err := afero.Exists(h.fs, p("/work/tool.exe.manifest"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunSearchManifest(t *testing.T) {
	h := newHarness(t, "/extra/build.cmd", "/tools/build.EXE")
	require.NoError(t, afero.WriteFile(h.fs, p("/cfg/search.yaml"),
		[]byte("directories: [../extra]\nextensions: [.cmd]\n"), 0o644))

	assert.Equal(t, ExitSuccess, h.run("-nologo", "-m", p("/cfg/search.yaml"), "build"))

	want, err := filepath.Abs(p("/extra/build.cmd"))
	require.NoError(t, err)
	assert.Equal(t, want+"\n", h.out.String())
}

func TestRunSearchManifestRejectsTraversal(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, ExitFailure, h.run("-nologo", "-m", p("../search.yaml"), "x"))
	assert.Contains(t, h.err.String(), "Invalid manifest file")
}

func TestRunSearchManifestInsecure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/cfg/search.yaml", []byte("directories: [/x]\n"), 0o666))

	assert.Equal(t, ExitFailure, h.run("-nologo", "-m", "/cfg/search.yaml", "x"))
	assert.Contains(t, h.err.String(), "writable by other users")
}

func TestRunSearchManifestMissing(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, ExitFailure, h.run("-nologo", "-m", p("/cfg/missing.yaml"), "x"))
	assert.True(t, strings.HasPrefix(h.err.String(), "\n"), "system errors start on a fresh line")
}

func TestRunVersion(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, ExitSuccess, h.run("--version"))
	assert.Equal(t, "findpath version 1.0.0 (commit: , built: )\n", h.out.String())
}

func TestRunUnclassifiedErrorUsesClassify(t *testing.T) {
	h := newHarness(t, "/app/tool.exe")
	h.app.Reveal = func(context.Context, string) error { return errors.New("odd failure") }

	assert.Equal(t, ExitFailure, h.run("-nologo", "-o", "tool.exe"))
	assert.Equal(t, "\n0: odd failure\n", h.err.String())
}

func TestRunMatchesMCPTool(t *testing.T) {
	h := newHarness(t, "/work/notepad.BAT", "/tools/notepad.EXE")
	require.Equal(t, ExitSuccess, h.run("-nologo", "notepad"))

	server := mcptool.New(mcptool.Options{
		Env: h.app.Env,
		NewSearcher: func(env pathutil.Environment) locate.Searcher {
			return h.app.NewSearcher(env)
		},
	})
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{mcptool.ArgFileName: "notepad"}
	result, err := server.Handle(context.Background(), req)
	require.NoError(t, err)
	require.False(t, result.IsError)

	tc, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	var got mcptool.Result
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &got))

	assert.Equal(t, h.out.String(), got.Quoted+"\n")
}
