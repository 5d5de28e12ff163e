// Package organizer copies every file of a source tree into per-extension
// buckets under a destination root.
//
// A run has four steps:
//   - Validate: check the source/destination pair without touching the disk
//   - ensureDestination: create the destination root if needed
//   - walk: depth-first traversal of the source tree using an explicit stack
//   - place: copy one file into <destination>/<bucket>/<name>
//
// Fatal problems are returned as errors wrapping one of the sentinel errors
// in errors.go. Problems with a single directory or file are passed to the
// Reporter and the run continues.
package organizer

import (
	"context"
	"fmt"

	"github.com/danieljhkim/byext/internal/config"
	"github.com/danieljhkim/byext/internal/fsops"
)

// Organizer sorts files into extension buckets.
type Organizer struct {
	fs       fsops.FS
	reporter Reporter
}

// New creates a new Organizer. A nil reporter discards reports.
func New(fs fsops.FS, reporter Reporter) *Organizer {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Organizer{
		fs:       fs,
		reporter: reporter,
	}
}

// Run validates opts, creates the destination root and copies every file
// under the source root into its extension bucket.
//
// An error is returned only for fatal problems and for ctx cancellation.
// Per-directory and per-file failures are reported and counted in the Result.
func (o *Organizer) Run(ctx context.Context, opts config.Options) (*Result, error) {
	paths, err := Validate(o.fs, opts)
	if err != nil {
		return nil, err
	}

	if err := o.ensureDestination(paths.CanonicalDestination); err != nil {
		return nil, err
	}

	result := &Result{Paths: paths}
	if err := o.walk(ctx, paths, result); err != nil {
		return result, err
	}
	return result, nil
}

// ensureDestination creates the destination root and any missing parents.
// It succeeds if the directory already exists.
func (o *Organizer) ensureDestination(dest string) error {
	if err := o.fs.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDestinationCreate, dest, err)
	}
	return nil
}
