// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ExecutablePath returns the absolute path of the running executable.
//
// gopsutil is asked first because it reads the path the OS recorded for the
// process; os.Executable is the fallback for platforms gopsutil does not
// cover.
func ExecutablePath() (string, error) {
	return executablePathFor(int32(os.Getpid()))
}

func executablePathFor(pid int32) (string, error) {
	if proc, err := process.NewProcess(pid); err == nil {
		if exe, err := proc.Exe(); err == nil && exe != "" {
			return filepath.Clean(exe), nil
		}
	}

	if pid != int32(os.Getpid()) {
		return "", fmt.Errorf("cannot determine executable of process %d", pid)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to determine executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// ExecutableDir returns the directory containing the running executable.
func ExecutableDir() (string, error) {
	exe, err := ExecutablePath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// BinaryName returns the running executable's file name without directory
// or extension, falling back to fallback when it cannot be determined.
func BinaryName(fallback string) string {
	exe, err := ExecutablePath()
	if err != nil {
		return fallback
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
