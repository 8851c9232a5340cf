//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// SystemLocations returns the Windows system directory, the 16-bit system
// directory and the Windows directory, in search order.
func SystemLocations() []Location {
	var locs []Location
	if dir, err := windows.GetSystemDirectory(); err == nil {
		locs = append(locs, Location{Kind: KindSystem, Dir: dir})
	}
	if dir, err := windows.GetWindowsDirectory(); err == nil {
		locs = append(locs,
			Location{Kind: KindLegacySystem, Dir: filepath.Join(dir, "SYSTEM")},
			Location{Kind: KindOS, Dir: dir},
		)
	}
	return locs
}
