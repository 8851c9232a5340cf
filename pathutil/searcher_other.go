//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"github.com/jongio/findpath/locate"
	"github.com/spf13/afero"
)

// NewSearcher returns the Searcher for this platform: the search order of
// env walked on the OS filesystem, with extra directories searched first.
func NewSearcher(env Environment, extra ...string) locate.Searcher {
	return NewFSSearcher(afero.NewOsFs(), env, extra...)
}

// NativeAvailable reports whether an OS-provided search primitive is used.
func NativeAvailable() bool {
	return false
}
