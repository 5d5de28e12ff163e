package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// walker holds the state of a single traversal.
type walker struct {
	o        *Organizer
	paths    *Paths
	destInfo os.FileInfo
	buckets  map[string]struct{}
	result   *Result
}

// walk visits every directory under the source root depth-first and places each
// non-directory entry. Directory symlinks are not followed, and the
// destination root is never descended into.
func (o *Organizer) walk(ctx context.Context, paths *Paths, result *Result) error {
	destInfo, err := o.fs.Stat(paths.CanonicalDestination)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDestinationCreate, paths.Destination, err)
	}

	w := &walker{
		o:        o,
		paths:    paths,
		destInfo: destInfo,
		buckets:  make(map[string]struct{}),
		result:   result,
	}

	// Child paths are built with filepath.Join, which cleans "..". Starting
	// from the resolved root keeps every joined path pointing where the
	// operating system would.
	pending := []string{paths.CanonicalSource}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			w.finish()
			return err
		}

		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		subdirs := w.visit(dir)
		// Push in reverse so subdirectories are visited in listing order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			pending = append(pending, subdirs[i])
		}
	}

	w.finish()
	return nil
}

// visit lists dir, places its files and returns its subdirectories.
// A directory that cannot be listed is reported and yields nothing.
func (w *walker) visit(dir string) []string {
	entries, err := w.o.fs.ReadDir(dir)
	if err != nil {
		w.result.SkippedDirs++
		w.o.reporter.DirFailed(dir, listError(err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if w.isDestination(path) {
				continue
			}
			subdirs = append(subdirs, path)
		case entry.Type()&os.ModeSymlink != 0 && w.linksToDir(path):
			w.result.SkippedLinks++
			w.o.reporter.LinkSkipped(path)
		default:
			w.place(path)
		}
	}
	return subdirs
}

// isDestination reports whether dir is the destination root.
func (w *walker) isDestination(dir string) bool {
	info, err := w.o.fs.Lstat(dir)
	if err != nil {
		return false
	}
	return os.SameFile(info, w.destInfo)
}

// linksToDir reports whether the symlink at path resolves to a directory.
// Broken links resolve to nothing and are left to the placer to report.
func (w *walker) linksToDir(path string) bool {
	info, err := w.o.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (w *walker) finish() {
	buckets := make([]string, 0, len(w.buckets))
	for b := range w.buckets {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)
	w.result.Buckets = buckets
}

// listError classifies a directory listing failure.
func listError(err error) error {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrReadDir, err)
}
