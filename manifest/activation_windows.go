//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package manifest

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/jongio/findpath/locate"
	"golang.org/x/sys/windows"
)

// The activation context API is bound at runtime; a kernel32 without it
// reports ErrActivationUnsupported.
var (
	modkernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procCreateActCtxW    = modkernel32.NewProc("CreateActCtxW")
	procActivateActCtx   = modkernel32.NewProc("ActivateActCtx")
	procDeactivateActCtx = modkernel32.NewProc("DeactivateActCtx")
	procReleaseActCtx    = modkernel32.NewProc("ReleaseActCtx")
)

// actCtx mirrors ACTCTXW.
type actCtx struct {
	Size                  uint32
	Flags                 uint32
	Source                *uint16
	ProcessorArchitecture uint16
	LangID                uint16
	AssemblyDirectory     *uint16
	ResourceName          *uint16
	ApplicationName       *uint16
	Module                windows.Handle
}

func available() bool {
	for _, p := range []*windows.LazyProc{procCreateActCtxW, procActivateActCtx, procDeactivateActCtx, procReleaseActCtx} {
		if p.Find() != nil {
			return false
		}
	}
	return true
}

// activate creates and activates a context for the manifest at path.
// Activation contexts are per thread, so the calling goroutine stays locked
// to its thread until the returned release runs.
func activate(path string) (func() error, error) {
	if !available() {
		return nil, ErrActivationUnsupported
	}

	source, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, locate.NewSystemError(locate.CodeInvalidParameter)
	}

	setup := actCtx{Source: source}
	setup.Size = uint32(unsafe.Sizeof(setup))

	r1, _, e1 := procCreateActCtxW.Call(uintptr(unsafe.Pointer(&setup)))
	handle := windows.Handle(r1)
	if handle == windows.InvalidHandle {
		return nil, lastError(e1)
	}

	runtime.LockOSThread()

	var cookie uintptr
	if r1, _, e1 := procActivateActCtx.Call(uintptr(handle), uintptr(unsafe.Pointer(&cookie))); r1 == 0 {
		runtime.UnlockOSThread()
		_, _, _ = procReleaseActCtx.Call(uintptr(handle))
		return nil, lastError(e1)
	}

	return func() error {
		defer runtime.UnlockOSThread()
		r1, _, e1 := procDeactivateActCtx.Call(0, cookie)
		_, _, _ = procReleaseActCtx.Call(uintptr(handle))
		if r1 == 0 {
			return lastError(e1)
		}
		return nil
	}, nil
}

func lastError(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno != 0 {
		return locate.NewSystemError(errno)
	}
	return locate.NewSystemError(locate.CodeInvalidParameter)
}
