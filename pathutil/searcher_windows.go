//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"syscall"
	"unsafe"

	"github.com/jongio/findpath/locate"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
)

// SearchPathW is bound at runtime so a missing export degrades to the
// portable searcher instead of failing to load.
var (
	modkernel32     = windows.NewLazySystemDLL("kernel32.dll")
	procSearchPathW = modkernel32.NewProc("SearchPathW")
)

// NativeAvailable reports whether SearchPathW could be bound.
func NativeAvailable() bool {
	return procSearchPathW.Find() == nil
}

// NewSearcher returns the Searcher for this platform. SearchPathW is used
// when available, after any extra directories; otherwise the portable
// searcher walks the same order on the OS filesystem.
func NewSearcher(env Environment, extra ...string) locate.Searcher {
	if !NativeAvailable() {
		return NewFSSearcher(afero.NewOsFs(), env, extra...)
	}
	if len(extra) == 0 {
		return nativeSearcher{}
	}
	return Chain{NewDirSearcher(afero.NewOsFs(), KindManifest, extra...), nativeSearcher{}}
}

type nativeSearcher struct{}

// SearchPath calls SearchPathW with a UTF-16 buffer of the same capacity and
// reports sizes in UTF-8 bytes. A UTF-16 path never needs more units than
// its UTF-8 form has bytes, so the negotiation still converges.
func (nativeSearcher) SearchPath(fileName, extension string, buf []byte) (int, error) {
	name, err := windows.UTF16PtrFromString(fileName)
	if err != nil {
		return 0, windows.ERROR_INVALID_PARAMETER
	}
	var ext *uint16
	if extension != "" {
		if ext, err = windows.UTF16PtrFromString(extension); err != nil {
			return 0, windows.ERROR_INVALID_PARAMETER
		}
	}

	wbuf := make([]uint16, len(buf))
	var bufPtr *uint16
	if len(wbuf) > 0 {
		bufPtr = &wbuf[0]
	}
	var filePart *uint16

	r1, _, e1 := procSearchPathW.Call(
		0,
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(ext)),
		uintptr(len(wbuf)),
		uintptr(unsafe.Pointer(bufPtr)),
		uintptr(unsafe.Pointer(&filePart)),
	)
	n := int(r1)
	if n == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return 0, errno
		}
		return 0, windows.ERROR_FILE_NOT_FOUND
	}
	if n > len(wbuf) {
		return n, nil
	}
	return fill(windows.UTF16ToString(wbuf[:n]), buf), nil
}
