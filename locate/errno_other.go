//go:build !windows

package locate

import "syscall"

// Platform error codes the resolver classifies on.
const (
	CodeFileNotFound     = syscall.ENOENT
	CodeNotEnoughMemory  = syscall.ENOMEM
	CodeInvalidParameter = syscall.EINVAL
	CodeAccessDenied     = syscall.EACCES
)
