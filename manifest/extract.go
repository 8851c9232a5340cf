// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package manifest

import (
	"debug/pe"
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jongio/findpath/fileutil"
	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/jongio/findpath/security"
	"github.com/spf13/afero"
)

// FileSuffix is appended to the base name of the image to name the
// extracted manifest.
const FileSuffix = ".manifest"

// resourceTypeManifest is RT_MANIFEST.
const resourceTypeManifest = 24

// imageDirectoryEntryResource is IMAGE_DIRECTORY_ENTRY_RESOURCE.
const imageDirectoryEntryResource = 2

const (
	resourceDirectorySize = 16
	resourceEntrySize     = 8
	resourceDataEntrySize = 16
	resourceSubdirFlag    = 0x80000000
)

var (
	// ErrNoManifest indicates the image has no RT_MANIFEST resource.
	ErrNoManifest = errors.New("no manifest resource")
	// ErrMalformedResources indicates the resource section could not be walked.
	ErrMalformedResources = errors.New("malformed resource section")
)

// ExtractFile returns the first RT_MANIFEST resource of the PE image at path.
func ExtractFile(fsys afero.Fs, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, locate.Classify(err)
	}
	defer func() { _ = f.Close() }()

	image, err := pe.NewFile(f)
	if err != nil {
		return nil, locate.WrapAppError(err, fmt.Sprintf("%s is not a PE image.", path))
	}
	defer func() { _ = image.Close() }()

	data, err := Extract(image)
	if err != nil {
		return nil, locate.WrapAppError(err, fmt.Sprintf("Unable to extract manifest from %s: %v.", path, err))
	}
	return data, nil
}

// Extract returns the bytes of the first RT_MANIFEST resource in image.
// The first name and the first language under RT_MANIFEST win.
func Extract(image *pe.File) ([]byte, error) {
	dir, ok := resourceDirectory(image)
	if !ok || dir.VirtualAddress == 0 || dir.Size == 0 {
		return nil, ErrNoManifest
	}

	rsrc, err := readRVA(image, dir.VirtualAddress, dir.Size)
	if err != nil {
		return nil, err
	}

	rva, size, err := findManifest(rsrc)
	if err != nil {
		return nil, err
	}
	return readRVA(image, rva, size)
}

func resourceDirectory(image *pe.File) (pe.DataDirectory, bool) {
	var dirs []pe.DataDirectory
	switch oh := image.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		dirs = oh.DataDirectory[:min(int(oh.NumberOfRvaAndSizes), len(oh.DataDirectory))]
	case *pe.OptionalHeader64:
		dirs = oh.DataDirectory[:min(int(oh.NumberOfRvaAndSizes), len(oh.DataDirectory))]
	}
	if len(dirs) <= imageDirectoryEntryResource {
		return pe.DataDirectory{}, false
	}
	return dirs[imageDirectoryEntryResource], true
}

// readRVA returns size bytes of the image starting at virtual address rva.
func readRVA(image *pe.File, rva, size uint32) ([]byte, error) {
	for _, s := range image.Sections {
		if rva < s.VirtualAddress || rva-s.VirtualAddress >= max(s.VirtualSize, s.Size) {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("reading section %s: %w", s.Name, err)
		}
		start := uint64(rva - s.VirtualAddress)
		end := start + uint64(size)
		if end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: %d bytes at 0x%x exceed section %s", ErrMalformedResources, size, rva, s.Name)
		}
		return data[start:end], nil
	}
	return nil, fmt.Errorf("%w: address 0x%x is not in any section", ErrMalformedResources, rva)
}

// findManifest walks the type, name and language levels of a resource
// directory and returns the location of the first RT_MANIFEST data entry.
// Offsets inside rsrc are relative to its start; the data entry holds an RVA.
func findManifest(rsrc []byte) (rva, size uint32, err error) {
	offset, ok, err := findEntry(rsrc, 0, func(id uint32) bool { return id == resourceTypeManifest })
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, ErrNoManifest
	}

	// Name, then language.
	for level := 0; level < 2; level++ {
		if offset&resourceSubdirFlag == 0 {
			return 0, 0, fmt.Errorf("%w: expected a subdirectory", ErrMalformedResources)
		}
		offset, ok, err = findEntry(rsrc, offset&^resourceSubdirFlag, func(uint32) bool { return true })
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return 0, 0, ErrNoManifest
		}
	}

	if offset&resourceSubdirFlag != 0 {
		return 0, 0, fmt.Errorf("%w: expected a data entry", ErrMalformedResources)
	}
	if uint64(offset)+resourceDataEntrySize > uint64(len(rsrc)) {
		return 0, 0, fmt.Errorf("%w: data entry out of range", ErrMalformedResources)
	}
	entry := rsrc[offset:]
	return binary.LittleEndian.Uint32(entry[0:4]), binary.LittleEndian.Uint32(entry[4:8]), nil
}

// findEntry scans the directory at dirOffset and returns the OffsetToData of
// the first entry whose id satisfies match. Named entries only match when
// any id is accepted.
func findEntry(rsrc []byte, dirOffset uint32, match func(id uint32) bool) (uint32, bool, error) {
	if uint64(dirOffset)+resourceDirectorySize > uint64(len(rsrc)) {
		return 0, false, fmt.Errorf("%w: directory at 0x%x out of range", ErrMalformedResources, dirOffset)
	}
	dir := rsrc[dirOffset:]
	named := int(binary.LittleEndian.Uint16(dir[12:14]))
	ids := int(binary.LittleEndian.Uint16(dir[14:16]))

	entries := uint64(dirOffset) + resourceDirectorySize
	if entries+uint64(named+ids)*resourceEntrySize > uint64(len(rsrc)) {
		return 0, false, fmt.Errorf("%w: directory at 0x%x truncated", ErrMalformedResources, dirOffset)
	}

	for i := 0; i < named+ids; i++ {
		e := rsrc[entries+uint64(i)*resourceEntrySize:]
		name := binary.LittleEndian.Uint32(e[0:4])
		data := binary.LittleEndian.Uint32(e[4:8])
		if name&resourceSubdirFlag != 0 {
			if match(^uint32(0)) {
				return data, true, nil
			}
			continue
		}
		if match(name) {
			return data, true, nil
		}
	}
	return 0, false, nil
}

// ExtractedName returns the file name the manifest of image is written to.
func ExtractedName(image string) string {
	return filepath.Base(image) + FileSuffix
}

// WriteExtracted extracts the manifest of the image at path and writes it to
// dir as ExtractedName(path). It returns the name written.
func WriteExtracted(fsys afero.Fs, path, dir string) (string, error) {
	log := logutil.NewLogger("manifest").WithOperation("extract")

	data, err := ExtractFile(fsys, path)
	if err != nil {
		return "", err
	}

	name := ExtractedName(path)
	if err := security.ValidateFileName(name); err != nil {
		return "", locate.WrapAppError(err, fmt.Sprintf("Cannot write manifest for %s: %v.", path, err))
	}

	if err := fileutil.AtomicWriteFile(fsys, filepath.Join(dir, name), data, fileutil.FilePermission); err != nil {
		return "", locate.Classify(err)
	}
	log.Debug("manifest written", "image", path, "file", name, "bytes", len(data))
	return name, nil
}
