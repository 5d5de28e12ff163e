package organizer

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/danieljhkim/byext/internal/config"
	"github.com/danieljhkim/byext/internal/fsops"
)

// Validate checks opts and returns the validated source/destination pair.
// It does not modify the filesystem.
//
// Checks run in order: source given, source exists and can be inspected,
// source is a directory, destination is not an existing non-directory,
// source and destination differ.
func Validate(fs fsops.FS, opts config.Options) (*Paths, error) {
	opts = opts.WithDefaults()

	if opts.Source == "" {
		return nil, ErrMissingArgument
	}

	srcInfo, err := fs.Stat(opts.Source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, opts.Source, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, opts.Source, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotADirectory, opts.Source)
	}

	// A destination that cannot be stat'ed is treated as absent; creating it
	// later reports the real problem.
	if dstInfo, err := fs.Stat(opts.Destination); err == nil && !dstInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDestinationNotADirectory, opts.Destination)
	}

	canonicalSrc, err := fs.Canonical(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source: %w", err)
	}
	canonicalDst, err := fs.Canonical(opts.Destination)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}
	if canonicalSrc == canonicalDst {
		return nil, fmt.Errorf("%w: %s", ErrSourceEqualsDestination, canonicalSrc)
	}

	return &Paths{
		Source:               opts.Source,
		Destination:          opts.Destination,
		CanonicalSource:      canonicalSrc,
		CanonicalDestination: canonicalDst,
	}, nil
}
