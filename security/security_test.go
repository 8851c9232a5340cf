// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid path", "/tmp/test", nil},
		{"current directory", ".", nil},
		{"relative manifest", "app.manifest.yaml", nil},
		{"empty path", "", ErrInvalidPath},
		{"nul byte", "a\x00b", ErrInvalidPath},
		{"parent reference", "../../../etc/passwd", ErrPathTraversal},
		{"embedded parent reference", "conf/../../secret", ErrPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePath(%q) unexpected error: %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePathExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	if err := os.WriteFile(path, []byte("directories: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePath(path); err != nil {
		t.Errorf("ValidatePath(%q) unexpected error: %v", path, err)
	}
}

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"notepad", false},
		{"notepad.exe", false},
		{"my tool.cmd", false},
		{"", true},
		{".", true},
		{"..", true},
		{"../etc/passwd", true},
		{"dir/file", true},
		{`dir\file`, true},
		{"C:file", true},
		{"bad\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	tests := []struct {
		mode    os.FileMode
		wantErr bool
	}{
		{0o600, false},
		{0o644, false},
		{0o755, false},
		{0o664, true},
		{0o646, true},
		{0o777, true},
	}

	for _, tt := range tests {
		err := ValidateFileMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFileMode(%o) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
	}
}
