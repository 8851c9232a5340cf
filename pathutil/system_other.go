//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

// SystemLocations returns the system binary directories, in search order.
// Unix has no 16-bit system directory, so that slot is omitted.
func SystemLocations() []Location {
	return []Location{
		{Kind: KindSystem, Dir: "/usr/bin"},
		{Kind: KindOS, Dir: "/bin"},
	}
}
