package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/byext/internal/fsops"
)

// fakeFS wraps RealFS and injects failures for specific paths.
type fakeFS struct {
	*fsops.RealFS
	readDirErr map[string]error
	mkdirErr   map[string]error
	copyErr    map[string]error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		RealFS:     fsops.NewRealFS(),
		readDirErr: make(map[string]error),
		mkdirErr:   make(map[string]error),
		copyErr:    make(map[string]error),
	}
}

func (fs *fakeFS) ReadDir(path string) ([]os.DirEntry, error) {
	if err, ok := fs.readDirErr[path]; ok {
		return nil, err
	}
	return fs.RealFS.ReadDir(path)
}

func (fs *fakeFS) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := fs.mkdirErr[path]; ok {
		return err
	}
	return fs.RealFS.MkdirAll(path, perm)
}

func (fs *fakeFS) CopyFile(src, dst string) error {
	if err, ok := fs.copyErr[src]; ok {
		return err
	}
	return fs.RealFS.CopyFile(src, dst)
}

// recordingReporter collects reported failures.
type recordingReporter struct {
	dirs  map[string]error
	files map[string]error
	links []string
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{
		dirs:  make(map[string]error),
		files: make(map[string]error),
	}
}

func (r *recordingReporter) DirFailed(dir string, err error) {
	r.dirs[dir] = err
}

func (r *recordingReporter) FileFailed(path string, err error) {
	r.files[path] = err
}

func (r *recordingReporter) LinkSkipped(path string) {
	r.links = append(r.links, path)
}

// tempDir returns a fresh temporary directory with symlinks resolved, so
// paths built from it match the paths the organizer reports.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// writeTree creates files under root. Keys are slash-separated relative
// paths, values are file contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// readFile returns the content of root/rel.
func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// listTree returns all regular files under root as slash-separated relative paths.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return files
}
