// Package fsops provides the filesystem operations used by byext.
//
// All filesystem access in byext goes through the FS interface so the
// organizer can be exercised against injected failures in tests.
//
// Key features:
//   - Canonical path resolution that tolerates not-yet-existing paths
//   - File copies that replace the target atomically (temp file + rename)
//   - Permission bits and file times carried over to the copy
package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrNotRegular indicates the copy source is not a regular file.
	ErrNotRegular = errors.New("not a regular file")

	// ErrSameFile indicates the copy source and destination are the same file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CopyFile copies the regular file at src to dst, replacing dst if present.
	CopyFile(src, dst string) error

	// Canonical returns the absolute, symlink-resolved form of path.
	Canonical(path string) (string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir lists the entries of a directory, sorted by name.
// On error no entries are returned, even if some were read.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Canonical returns the absolute, symlink-resolved form of path.
//
// The path is resolved as written: ".." after a symlink refers to the parent
// of the link target, as it does for the operating system. Only the longest
// existing prefix is resolved; the missing remainder is appended as-is. This
// lets a destination that has not been created yet be compared against an
// existing source.
func (fs *RealFS) Canonical(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		// Not filepath.Join, which would clean ".." before links are followed.
		path = wd + string(filepath.Separator) + path
	}

	var missing []string
	cur := path
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			abs, err := filepath.Abs(resolved)
			if err != nil {
				return "", fmt.Errorf("failed to make path absolute: %w", err)
			}
			return filepath.Join(append([]string{abs}, missing...)...), nil
		}
		parent, base := splitLast(cur)
		if parent == cur {
			return filepath.Clean(path), nil
		}
		if base != "" {
			missing = append([]string{base}, missing...)
		}
		cur = parent
	}
}

// splitLast splits p at its last separator without cleaning it. dir keeps
// its trailing separator so a root stays a root. When p has no separator
// left, dir is p itself.
func splitLast(p string) (dir, base string) {
	end := len(p)
	for end > 0 && os.IsPathSeparator(p[end-1]) {
		end--
	}
	i := end - 1
	for i >= 0 && !os.IsPathSeparator(p[i]) {
		i--
	}
	if i < 0 {
		return p, ""
	}
	return p[:i+1], p[i+1 : end]
}

// CopyFile copies the regular file at src to dst.
// Symlinks at src are followed. An existing dst is replaced atomically, so a
// failed copy never leaves a truncated file behind.
func (fs *RealFS) CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, src)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: %s", ErrSameFile, dst)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	tmpFile, err := os.CreateTemp(filepath.Dir(dst), ".byext-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := copyTimes(src, tmpPath, srcInfo); err != nil {
		return fmt.Errorf("failed to set file times: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Success - don't clean up temp file
	tmpFile = nil
	return nil
}
