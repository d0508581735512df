// Project:   liferay-frontend-source-formatter
// File:      internal/fixer/fixer.go
// Purpose:   File read and fix write-back layer
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

// Package fixer is the filesystem edge of the tool: it reads source files,
// classifies read failures so callers can decide skip-vs-fail, and writes
// fixed content back. The rule engine itself never touches a filesystem.
package fixer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/adapter"
)

// Distinguishable read failures.
var (
	ErrNotFound    = errors.New("file not found")
	ErrIsDirectory = errors.New("is a directory")
	ErrPermission  = errors.New("permission denied")
)

// Fixer reads and writes source files through an afero filesystem.
type Fixer struct {
	fs afero.Fs
}

// New returns a fixer over fsys.
func New(fsys afero.Fs) *Fixer {
	return &Fixer{fs: fsys}
}

// Read returns the file's content. Failures wrap one of ErrNotFound,
// ErrIsDirectory, or ErrPermission when the cause is recognizable.
func (f *Fixer) Read(path string) (string, error) {
	if info, err := f.fs.Stat(path); err == nil && info.IsDir() {
		return "", fmt.Errorf("reading %s: %w", path, ErrIsDirectory)
	}

	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, classify(err))
	}
	return string(data), nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	default:
		return err
	}
}

// Write persists fixed content. Unchanged content is never rewritten; the
// fixed output is re-parsed first so a bad fix cannot clobber a valid file.
// The boolean reports whether the file was written.
func (f *Fixer) Write(path, original, fixed string) (bool, error) {
	if fixed == original {
		return false, nil
	}

	if err := adapter.ValidateSyntax(path, fixed); err != nil {
		return false, fmt.Errorf("fix for %s would create invalid syntax: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := afero.WriteFile(f.fs, path, []byte(fixed), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}
