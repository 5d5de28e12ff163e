package cli

import (
	"errors"

	"github.com/danieljhkim/byext/internal/organizer"
)

// consoleReporter prints recoverable failures as warnings while the run continues.
type consoleReporter struct {
	p *printer
}

func (r *consoleReporter) DirFailed(dir string, err error) {
	if errors.Is(err, organizer.ErrPermissionDenied) {
		r.p.Warningf("Access denied: %s", dir)
		return
	}
	r.p.Warningf("Error reading directory %s: %v", dir, err)
}

func (r *consoleReporter) FileFailed(path string, err error) {
	r.p.Warningf("Problem with copying %s: %v", path, err)
}

func (r *consoleReporter) LinkSkipped(path string) {
	r.p.Warningf("Skipped directory symlink: %s", path)
}
