// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jongio/findpath/locate"
	"github.com/spf13/afero"
)

// FSSearcher implements locate.Searcher by checking each search location on
// a filesystem in order. It follows the SearchPathW buffer contract.
type FSSearcher struct {
	Fs        afero.Fs
	Locations func() []Location
}

// NewFSSearcher returns an FSSearcher over fsys that walks the search order
// of env, with extra directories searched first.
func NewFSSearcher(fsys afero.Fs, env Environment, extra ...string) *FSSearcher {
	return &FSSearcher{
		Fs:        fsys,
		Locations: func() []Location { return SearchOrder(env, extra...) },
	}
}

// NewDirSearcher returns an FSSearcher over fsys that only looks in dirs.
func NewDirSearcher(fsys afero.Fs, kind LocationKind, dirs ...string) *FSSearcher {
	locs := make([]Location, 0, len(dirs))
	for _, dir := range dirs {
		locs = append(locs, Location{Kind: kind, Dir: dir})
	}
	return &FSSearcher{
		Fs:        fsys,
		Locations: func() []Location { return locs },
	}
}

// SearchPath implements locate.Searcher.
func (s *FSSearcher) SearchPath(fileName, extension string, buf []byte) (int, error) {
	if fileName == "" || strings.ContainsRune(fileName, 0) || strings.ContainsRune(extension, 0) {
		return 0, locate.CodeInvalidParameter
	}

	candidate := locate.WithExtension(fileName, extension)

	if filepath.IsAbs(candidate) {
		return s.check(filepath.Clean(candidate), buf)
	}

	for _, loc := range s.Locations() {
		n, err := s.check(filepath.Join(loc.Dir, candidate), buf)
		if n == 0 && isAbsent(err) {
			continue
		}
		return n, err
	}

	return 0, locate.CodeFileNotFound
}

func (s *FSSearcher) check(path string, buf []byte) (int, error) {
	if _, err := s.Fs.Stat(path); err != nil {
		if isAbsent(err) {
			return 0, locate.CodeFileNotFound
		}
		return 0, err
	}
	return fill(path, buf), nil
}

// fill copies path into buf when it fits with a terminator slot to spare,
// otherwise it returns the size buf needs to be.
func fill(path string, buf []byte) int {
	if len(path)+1 > len(buf) {
		return len(path) + 1
	}
	return copy(buf, path)
}

func isAbsent(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// Chain tries each Searcher in turn until one reports anything other than
// file-not-found.
type Chain []locate.Searcher

// SearchPath implements locate.Searcher.
func (c Chain) SearchPath(fileName, extension string, buf []byte) (int, error) {
	for _, s := range c {
		n, err := s.SearchPath(fileName, extension, buf)
		if n == 0 && locate.Classify(err).Recoverable() {
			continue
		}
		return n, err
	}
	return 0, locate.CodeFileNotFound
}
