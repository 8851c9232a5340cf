// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"

	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/jongio/findpath/procutil"
)

// Environment variable names consumed by the search.
const (
	EnvPath    = "PATH"
	EnvPathExt = "PATHEXT"
)

// LocationKind identifies where a search directory comes from.
type LocationKind string

const (
	KindManifest     LocationKind = "manifest"
	KindApplication  LocationKind = "application"
	KindCurrent      LocationKind = "current"
	KindSystem       LocationKind = "system"
	KindLegacySystem LocationKind = "legacy-system"
	KindOS           LocationKind = "os"
	KindPath         LocationKind = "path"
)

// Location is one directory in the search order.
type Location struct {
	Kind LocationKind `json:"kind"`
	Dir  string       `json:"dir"`
}

// Environment supplies the process state the search order is built from.
type Environment interface {
	Getenv(key string) string
	Getwd() (string, error)
	ExecutableDir() (string, error)
}

type osEnvironment struct{}

func (osEnvironment) Getenv(key string) string       { return os.Getenv(key) }
func (osEnvironment) Getwd() (string, error)         { return os.Getwd() }
func (osEnvironment) ExecutableDir() (string, error) { return procutil.ExecutableDir() }

// DefaultEnvironment returns the Environment of the running process.
func DefaultEnvironment() Environment {
	return osEnvironment{}
}

// StaticEnvironment is a fixed Environment, used by tests and by callers
// that resolve on behalf of another process.
type StaticEnvironment struct {
	Vars   map[string]string
	Dir    string
	ExeDir string
}

func (e StaticEnvironment) Getenv(key string) string       { return e.Vars[key] }
func (e StaticEnvironment) Getwd() (string, error)         { return e.Dir, nil }
func (e StaticEnvironment) ExecutableDir() (string, error) { return e.ExeDir, nil }

// SearchOrder returns the directories searched for a file, in order:
// any extra (manifest) directories, the application directory, the current
// directory, the system directories, then each PATH entry.
//
// Relative PATH entries are made absolute against the current directory and
// empty PATH entries are skipped.
func SearchOrder(env Environment, extra ...string) []Location {
	log := logutil.NewLogger("pathutil").WithOperation("search-order")

	cwd, err := env.Getwd()
	if err != nil {
		log.Debug("current directory unavailable", "error", err)
		cwd = ""
	}
	abs := func(dir string) string {
		if filepath.IsAbs(dir) || cwd == "" {
			return filepath.Clean(dir)
		}
		return filepath.Join(cwd, dir)
	}

	var locs []Location
	for _, dir := range extra {
		if dir != "" {
			locs = append(locs, Location{Kind: KindManifest, Dir: abs(dir)})
		}
	}

	if exeDir, err := env.ExecutableDir(); err == nil && exeDir != "" {
		locs = append(locs, Location{Kind: KindApplication, Dir: exeDir})
	} else {
		log.Debug("application directory unavailable", "error", err)
	}

	if cwd != "" {
		locs = append(locs, Location{Kind: KindCurrent, Dir: cwd})
	}

	locs = append(locs, SystemLocations()...)

	for _, dir := range PathEntries(env) {
		if dir != "" {
			locs = append(locs, Location{Kind: KindPath, Dir: abs(dir)})
		}
	}

	return locs
}

// PathEntries splits the PATH variable of env into its entries, keeping
// empty entries so the list mirrors the variable exactly.
func PathEntries(env Environment) []string {
	return locate.ParseList(env.Getenv(EnvPath), os.PathListSeparator)
}

// FallbackExtensions returns the PATHEXT entries of env, capped at
// locate.MaxExtensions. An unset or empty PATHEXT yields no extensions.
func FallbackExtensions(env Environment) []string {
	raw := env.Getenv(EnvPathExt)
	if raw == "" {
		return nil
	}
	return locate.LimitExtensions(locate.ParseList(raw, locate.ExtensionDelimiter))
}
