// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security provides path validation for inputs that steer the search:
// manifest files and file names supplied by untrusted callers.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInsecureFilePermissions indicates a file is writable by group or others.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
)

// ValidatePath checks if a path is safe to use.
// It rejects empty paths, NUL bytes and parent directory references, before
// and after resolving symbolic links.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%w: path contains NUL byte", ErrInvalidPath)
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	resolvedPath, err := filepath.EvalSymlinks(filepath.Clean(absPath))
	if err != nil {
		// A path that does not exist yet is still structurally valid.
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		resolvedPath = absPath
	}

	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateFileName checks that name is a bare file name: no directory
// component, no drive, no NUL byte and not "." or "..".
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty file name", ErrInvalidPath)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: file name contains NUL byte", ErrInvalidPath)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is not a file name", ErrPathTraversal, name)
	}
	if strings.ContainsAny(name, `/\:`) {
		return fmt.Errorf("%w: file name must not contain a directory", ErrPathTraversal)
	}
	return nil
}

// ValidateFileMode rejects modes that are writable by group or others.
// On Windows, this check is skipped as Windows uses ACLs differently.
func ValidateFileMode(mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if mode.Perm()&0o022 != 0 {
		return ErrInsecureFilePermissions
	}
	return nil
}
