// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jongio/findpath/cliout"
	"github.com/jongio/findpath/clipboard"
	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/jongio/findpath/manifest"
	"github.com/jongio/findpath/pathutil"
	"github.com/jongio/findpath/procutil"
	"github.com/jongio/findpath/reveal"
	"github.com/jongio/findpath/security"
	"github.com/jongio/findpath/version"
	"github.com/spf13/afero"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = -1
)

// DefaultBinaryName is used when the executable name cannot be determined.
const DefaultBinaryName = "findpath"

// Options are the parsed command-line options.
type Options struct {
	Copy            bool
	Manifest        string
	NoLogo          bool
	Open            bool
	Verbose         bool
	ExtractManifest bool
	Help            bool
	FileName        string
}

// App runs findpath against a set of collaborators. The zero value is not
// usable; call NewApp.
type App struct {
	// Binary is the name shown in usage hints.
	Binary string
	Env    pathutil.Environment
	Fs     afero.Fs
	Out    *cliout.Printer
	Info   *version.Info

	// NewSearcher returns the searcher for env with extra directories
	// searched first.
	NewSearcher func(env pathutil.Environment, extra ...string) locate.Searcher
	// Copy places text on the clipboard.
	Copy func(text string) error
	// Reveal shows path in the file manager.
	Reveal func(ctx context.Context, path string) error
}

// NewApp returns an App wired to the running process, printing to p.
func NewApp(p *cliout.Printer) *App {
	return &App{
		Binary:      procutil.BinaryName(DefaultBinaryName),
		Env:         pathutil.DefaultEnvironment(),
		Fs:          afero.NewOsFs(),
		Out:         p,
		Info:        version.New(DefaultBinaryName),
		NewSearcher: pathutil.NewSearcher,
		Copy:        clipboard.Copy,
		Reveal: func(ctx context.Context, path string) error {
			return reveal.Reveal(ctx, path, reveal.DefaultTimeout)
		},
	}
}

// Run executes findpath with args, not including the program name, and
// returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	normalized, err := normalize(args)
	if err == nil {
		var opts Options
		cmd := a.newCommand(&opts)
		cmd.SetArgs(normalized)
		err = cmd.ExecuteContext(ctx)
	}

	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		a.Out.Usage(a.Binary, usageErr.Message)
	} else {
		a.Out.Error(err)
	}
	return ExitFailure
}

// logo prints the banner unless suppressed.
func (a *App) logo(opts *Options) {
	if !opts.NoLogo {
		a.Out.Logo(a.Info.Version, a.Info.Author)
	}
}

// find resolves the file named in opts and performs the requested actions.
func (a *App) find(ctx context.Context, opts *Options) error {
	log := logutil.NewLogger("cli").WithOperation("find").WithFields("file", opts.FileName)

	var applied *manifest.Context
	if opts.Manifest != "" {
		var err error
		if applied, err = a.applyManifest(opts.Manifest); err != nil {
			return err
		}
		defer func() {
			if err := applied.Release(); err != nil {
				log.Warn("failed to release manifest", "error", err)
			}
		}()
	}

	exts := pathutil.FallbackExtensions(a.Env)
	var extra []string
	if applied != nil {
		extra = applied.Directories
		if len(applied.Extensions) > 0 {
			exts = applied.Extensions
		}
	}

	if logutil.DebugEnabled() {
		log.Debug("search order", "locations", pathutil.SearchOrder(a.Env, extra...))
	}

	resolver := locate.NewResolver(a.NewSearcher(a.Env, extra...), a.Out.Trace())
	path, err := resolver.Resolve(locate.Request{
		FileName:   opts.FileName,
		Extensions: exts,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		log.Debug("resolution failed", "probes", resolver.Probes(), "error", err)
		return err
	}
	log.Debug("resolved", "path", path, "probes", resolver.Probes())

	formatted := locate.QuotePath(path)
	a.Out.Path(formatted)

	if opts.Copy {
		if err := a.Copy(formatted); err != nil {
			return err
		}
	}

	if opts.Open {
		if err := a.Reveal(ctx, path); err != nil {
			return err
		}
	}

	if opts.ExtractManifest {
		dir, err := a.Env.Getwd()
		if err != nil {
			return locate.Classify(err)
		}
		name, err := manifest.WriteExtracted(a.Fs, path, dir)
		if err != nil {
			return err
		}
		a.Out.Plain("Manifest extracted to: %s", name)
	}

	return nil
}

// applyManifest validates and applies a -m manifest. Search manifests add
// directories to an executable search, so they must not be writable by
// other users.
func (a *App) applyManifest(path string) (*manifest.Context, error) {
	if manifest.IsSearchManifest(path) {
		if err := security.ValidatePath(path); err != nil {
			return nil, locate.WrapAppError(err, fmt.Sprintf("Invalid manifest file %s: %v.", path, err))
		}
		info, err := a.Fs.Stat(path)
		if err != nil {
			return nil, locate.Classify(err)
		}
		if err := security.ValidateFileMode(info.Mode()); err != nil {
			return nil, locate.WrapAppError(err, fmt.Sprintf("Manifest file %s is writable by other users.", path))
		}
	}
	return manifest.Apply(a.Fs, path)
}

// helpData describes the search order of the running platform.
func (a *App) helpData() cliout.HelpData {
	order := []string{
		"The directory from which the application loaded.",
		"The current directory.",
	}
	for _, loc := range pathutil.SystemLocations() {
		switch loc.Kind {
		case pathutil.KindSystem:
			order = append(order, fmt.Sprintf("The system directory (%s).", loc.Dir))
		case pathutil.KindLegacySystem:
			order = append(order, fmt.Sprintf("The 16-bit system directory (%s).", loc.Dir))
		case pathutil.KindOS:
			order = append(order, fmt.Sprintf("The %s directory (%s).", osName(), loc.Dir))
		}
	}
	order = append(order, fmt.Sprintf("The directories that are listed in the %s environment variable.", pathutil.EnvPath))

	return cliout.HelpData{
		Binary:      a.Binary,
		Order:       order,
		PathEntries: pathutil.PathEntries(a.Env),
		PathExt:     a.Env.Getenv(pathutil.EnvPathExt),
	}
}

func osName() string {
	if filepath.Separator == '\\' {
		return "Windows"
	}
	return "OS"
}
