// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrActivationUnsupported is returned by platforms without activation
// contexts.
var ErrActivationUnsupported = errors.New("activation contexts are not supported on this platform")

// SearchManifest is the YAML form of a search manifest.
type SearchManifest struct {
	Directories []string `yaml:"directories"`
	Extensions  []string `yaml:"extensions"`
}

// IsSearchManifest reports whether path names a YAML search manifest.
func IsSearchManifest(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a YAML search manifest from fsys. Relative directories are made
// absolute against the directory containing path and blank entries dropped.
func Load(fsys afero.Fs, path string) (*SearchManifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading search manifest: %w", err)
	}

	var m SearchManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, locate.WrapAppError(err, fmt.Sprintf("Invalid manifest file %s: %v", path, err))
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		base = filepath.Dir(path)
	}

	dirs := make([]string, 0, len(m.Directories))
	for _, dir := range m.Directories {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		dirs = append(dirs, filepath.Clean(dir))
	}
	m.Directories = dirs
	m.Extensions = locate.LimitExtensions(m.Extensions)

	return &m, nil
}

// Context is an applied manifest. Release must be called once the search
// is done.
type Context struct {
	// Source is the manifest path.
	Source string
	// Directories are searched before the standard search order.
	Directories []string
	// Extensions, when non-empty, replace PATHEXT as the fallback list.
	Extensions []string
	// Activated is true while a Windows activation context is active.
	Activated bool

	release func() error
}

// Release undoes the manifest. It is safe to call on a nil Context and more
// than once.
func (c *Context) Release() error {
	if c == nil || c.release == nil {
		return nil
	}
	release := c.release
	c.release = nil
	c.Activated = false
	return release()
}

// Apply loads the manifest at path. YAML manifests are read from fsys.
// Anything else is activated as an application manifest. When the platform
// has no activation contexts the manifest is ignored with a warning.
func Apply(fsys afero.Fs, path string) (*Context, error) {
	log := logutil.NewLogger("manifest").WithOperation("apply")

	if IsSearchManifest(path) {
		m, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		log.Debug("search manifest loaded", "path", path,
			"directories", len(m.Directories), "extensions", len(m.Extensions))
		return &Context{Source: path, Directories: m.Directories, Extensions: m.Extensions}, nil
	}

	release, err := activate(path)
	if errors.Is(err, ErrActivationUnsupported) {
		log.Warn("manifest ignored", "path", path, "reason", err.Error())
		return &Context{Source: path}, nil
	}
	if err != nil {
		return nil, err
	}
	log.Debug("activation context active", "path", path)
	return &Context{Source: path, Activated: true, release: release}, nil
}
