package organizer

import (
	"fmt"
	"path/filepath"
)

// place copies the file at path to <destination>/<bucket>/<name>, creating
// the bucket directory on demand. An existing file of the same name is
// overwritten. Failures are reported and counted, never returned.
func (w *walker) place(path string) {
	bucket := Bucket(path)
	bucketDir := filepath.Join(w.paths.CanonicalDestination, bucket)

	if err := w.o.fs.MkdirAll(bucketDir, 0755); err != nil {
		w.result.Failed++
		w.o.reporter.FileFailed(path, fmt.Errorf("%w: %s: %w", ErrBucketCreate, bucketDir, err))
		return
	}

	target := filepath.Join(bucketDir, filepath.Base(path))
	if err := w.o.fs.CopyFile(path, target); err != nil {
		w.result.Failed++
		w.o.reporter.FileFailed(path, fmt.Errorf("%w: %w", ErrCopy, err))
		return
	}

	w.result.Copied++
	w.buckets[bucket] = struct{}{}
}
