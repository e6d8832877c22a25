package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/slackspace/internal/slackspace"
	"github.com/idelchi/slackspace/internal/walk"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run parses args and performs the scan, writing the report to stdout and
// usage, errors and progress to stderr.
func (c CLI) Run(args []string, stdout, stderr io.Writer) error {
	cmd := c.command(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.Execute()

	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, cmd.UsageString())
	}

	return err
}

// usageError marks errors caused by invalid invocation; they are followed by
// the usage text.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

// normalizeArgs maps the legacy "/s" switch onto "-s".
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))

	for i, arg := range args {
		switch arg {
		case "/s", "/S":
			out[i] = "-s"
		default:
			out[i] = arg
		}
	}

	return out
}

func (c CLI) command(stdout, stderr io.Writer) *cobra.Command {
	var options slackspace.Options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "slackspace [-s] [rootpath [filespec]]",
		Short: "Measure space lost to partially filled clusters",
		Long: heredoc.Doc(`
			slackspace walks a directory tree and adds up, for every file, the unused
			bytes in the last cluster allocated to it. The total is reported next to
			the capacity and usage of the volume.

			Positional Arguments:
			  rootpath               Directory to scan. Defaults to the root of the current drive.
			  filespec               Glob the file names must match (e.g. '*.log'). Defaults to all files.

			Directories and files that cannot be read are skipped silently.
		`),
		Version: c.version,
		Args: func(cmd *cobra.Command, args []string) error {
			//nolint:mnd // rootpath and filespec
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return usageError{err}
			}

			return nil
		},
		// Usage is printed by Run, for usage errors only.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Output = strings.ToLower(options.Output)
			if !slices.Contains(allowedOutputs, options.Output) {
				return usageError{fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)}
			}

			if !slices.Contains(walk.Engines, options.Engine) {
				return usageError{fmt.Errorf("invalid engine %q: must be one of %v", options.Engine, walk.Engines)}
			}

			if options.Workers < 0 {
				return usageError{errors.New("workers cannot be negative")}
			}

			if len(args) > 0 {
				options.Path = args[0]
			}

			if len(args) > 1 {
				options.Pattern = args[1]
			}

			return logic(cmd.Context(), options, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&options.Sequential, "sequential", "s", false, "Traverse sequentially instead of in parallel")
	flags.IntVarP(&options.Workers, "workers", "j", 0, "Maximum concurrent operations in parallel mode (0=auto)")
	flags.StringVarP(&options.Engine, "engine", "e", walk.ForkJoinEngine, "Traversal engine: forkjoin or fastwalk")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}
