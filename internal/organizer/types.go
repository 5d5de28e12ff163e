package organizer

// Paths is a validated source/destination pair.
type Paths struct {
	// Source is the source root as given.
	Source string

	// Destination is the destination root as given.
	Destination string

	// CanonicalSource is the absolute, symlink-resolved source root.
	CanonicalSource string

	// CanonicalDestination is the absolute, symlink-resolved destination root.
	CanonicalDestination string
}

// Reporter receives recoverable failures as they happen during a run.
// Implementations must not block; the walk continues once they return.
type Reporter interface {
	// DirFailed is called when a directory cannot be listed. Its subtree is skipped.
	DirFailed(dir string, err error)

	// FileFailed is called when a file cannot be placed into its bucket.
	FileFailed(path string, err error)

	// LinkSkipped is called for a symlink to a directory, which is not followed.
	LinkSkipped(path string)
}

// Result summarizes a completed run.
type Result struct {
	// Paths is the validated source/destination pair the run used.
	Paths *Paths

	// Copied is the number of files copied into buckets.
	Copied int

	// Failed is the number of files that could not be copied.
	Failed int

	// SkippedDirs is the number of directories whose subtree was skipped
	// because they could not be listed.
	SkippedDirs int

	// SkippedLinks is the number of symlinks to directories that were not followed.
	SkippedLinks int

	// Buckets lists the extension buckets that received at least one file, sorted.
	Buckets []string
}

// NopReporter discards all reports.
type NopReporter struct{}

// DirFailed does nothing.
func (NopReporter) DirFailed(string, error) {}

// FileFailed does nothing.
func (NopReporter) FileFailed(string, error) {}

// LinkSkipped does nothing.
func (NopReporter) LinkSkipped(string) {}
