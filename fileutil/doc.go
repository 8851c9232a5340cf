// Package fileutil provides atomic file writes on an afero filesystem.
//
// The extracted manifest is written next to the user's working directory,
// often over a previous extraction. AtomicWriteFile writes to a uniquely
// named temporary file, syncs it, and renames it into place with a few
// retries, so an interrupted run never leaves a truncated manifest behind.
//
// # Example Usage
//
//	fsys := afero.NewOsFs()
//	if err := fileutil.AtomicWriteFile(fsys, "notepad.exe.manifest", data, fileutil.FilePermission); err != nil {
//	    return err
//	}
package fileutil
