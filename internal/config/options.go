// Package config holds the run options for byext.
//
// byext has no configuration file and reads no environment variables. The
// only configurable value is the destination root, which defaults to
// DefaultDestination relative to the current working directory.
package config

// DefaultDestination is the destination root used when none is given.
const DefaultDestination = "dist"

// Options describes a single organize run.
type Options struct {
	// Source is the directory tree to scan. Required.
	Source string

	// Destination is the root that receives the extension buckets.
	Destination string
}

// FromArgs builds Options from positional arguments:
// <source-directory> [destination-directory].
// Missing values are left empty except Destination, which falls back to
// DefaultDestination.
func FromArgs(args []string) Options {
	var opts Options
	if len(args) > 0 {
		opts.Source = args[0]
	}
	if len(args) > 1 {
		opts.Destination = args[1]
	}
	return opts.WithDefaults()
}

// WithDefaults returns a copy of o with unset fields filled in.
func (o Options) WithDefaults() Options {
	if o.Destination == "" {
		o.Destination = DefaultDestination
	}
	return o
}
