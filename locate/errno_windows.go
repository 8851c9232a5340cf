//go:build windows

package locate

import "golang.org/x/sys/windows"

// Platform error codes the resolver classifies on.
const (
	CodeFileNotFound     = windows.ERROR_FILE_NOT_FOUND
	CodeNotEnoughMemory  = windows.ERROR_NOT_ENOUGH_MEMORY
	CodeInvalidParameter = windows.ERROR_INVALID_PARAMETER
	CodeAccessDenied     = windows.ERROR_ACCESS_DENIED
)
