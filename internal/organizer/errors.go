package organizer

import "errors"

// Fatal errors. Any of these aborts the run before a file is copied.
var (
	// ErrMissingArgument indicates no source directory was given.
	ErrMissingArgument = errors.New("no source directory provided")

	// ErrSourceNotFound indicates the source path does not exist.
	ErrSourceNotFound = errors.New("source directory does not exist")

	// ErrSourceUnreadable indicates the source exists but cannot be inspected,
	// for example for lack of permission on a parent or a symlink loop.
	ErrSourceUnreadable = errors.New("cannot access source directory")

	// ErrSourceNotADirectory indicates the source path is not a directory.
	ErrSourceNotADirectory = errors.New("source is not a directory")

	// ErrDestinationNotADirectory indicates the destination exists as a non-directory.
	ErrDestinationNotADirectory = errors.New("destination is not a directory")

	// ErrSourceEqualsDestination indicates both paths resolve to the same directory.
	ErrSourceEqualsDestination = errors.New("source and destination are the same directory")

	// ErrDestinationCreate indicates the destination root could not be created.
	ErrDestinationCreate = errors.New("cannot create destination directory")
)

// Recoverable errors, passed to the Reporter.
var (
	// ErrPermissionDenied indicates a directory could not be listed for lack of permission.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrReadDir indicates a directory could not be listed.
	ErrReadDir = errors.New("cannot read directory")

	// ErrBucketCreate indicates an extension bucket could not be created.
	ErrBucketCreate = errors.New("cannot create bucket directory")

	// ErrCopy indicates a file could not be copied into its bucket.
	ErrCopy = errors.New("copy failed")
)
