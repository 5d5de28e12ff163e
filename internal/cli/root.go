package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/byext/internal/config"
	"github.com/danieljhkim/byext/internal/fsops"
	"github.com/danieljhkim/byext/internal/organizer"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// reportedError marks an error whose message has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// newRootCmd builds the byext command. A fresh command is built per
// execution so flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "byext <source-directory> [destination-directory]",
		Version: version,
		Short:   "Copy every file of a directory tree into per-extension folders",
		Long: `byext walks <source-directory> recursively and copies each file into
<destination-directory>/<extension>/<file name>.

Extensions are lowercased. Files without one go into "no_extension".
Nested folders are flattened, and a file that already exists in its
extension folder is overwritten. Symlinks to folders are not followed;
each one is reported and skipped. The destination defaults to "` + config.DefaultDestination + `".`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: runOrganize,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpFunc(customHelpFunc)
	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	org := organizer.New(fsops.NewRealFS(), &consoleReporter{p: p})

	if _, err := org.Run(cmd.Context(), config.FromArgs(args)); err != nil {
		p.Error(fatalMessage(err))
		return &reportedError{err: err}
	}

	p.Success("Done!")
	return nil
}

// fatalMessage returns the one-line diagnostic for an error that aborted a run.
func fatalMessage(err error) string {
	switch {
	case errors.Is(err, organizer.ErrMissingArgument):
		return "No source directory provided."
	case errors.Is(err, organizer.ErrSourceNotFound):
		return "Source directory does not exist."
	case errors.Is(err, organizer.ErrSourceUnreadable):
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Sprintf("Cannot access source directory: %v.", pathErr.Err)
		}
		return "Cannot access source directory."
	case errors.Is(err, organizer.ErrSourceNotADirectory):
		return "Source directory is not a directory."
	case errors.Is(err, organizer.ErrDestinationNotADirectory):
		return "Destination directory is not a directory."
	case errors.Is(err, organizer.ErrSourceEqualsDestination):
		return "Source and destination directories must be different."
	case errors.Is(err, organizer.ErrDestinationCreate):
		return "Cannot create destination directory."
	case errors.Is(err, context.Canceled):
		return "Interrupted."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// customHelpFunc prints help with colored section titles.
func customHelpFunc(cmd *cobra.Command, args []string) {
	sectionTitleColor := colorFor(cmd.OutOrStdout(), color.FgBlue, color.Bold)

	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute runs byext with os.Args. Errors not printed by the command itself
// (argument errors from cobra) are printed to stderr.
func Execute(ctx context.Context) error {
	return execute(ctx, newRootCmd())
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Error(err.Error())
	}
	return err
}
