package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/torusroute/internal/logging"
	"github.com/katalvlaran/torusroute/legend"
	"github.com/katalvlaran/torusroute/render"
	"github.com/katalvlaran/torusroute/torus"
)

// options holds the parsed flag values of the root command.
type options struct {
	legendPath string
	color      string
	logLevel   string
}

// NewRootCommand builds the torusroute command writing the map to stdout and
// diagnostics to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "torusroute [flags] <map_file>",
		Short: "Draw the shortest route between 'i' and 'O' on a wrap-around map",
		Long: `torusroute reads a text map, finds the shortest route from the entry 'i'
to the exit 'O' moving up, down, left or right, where leaving one edge re-enters
on the opposite edge, and prints the map with the route drawn as '.'.
Walls are '#'. The map is printed unchanged when a marker is missing or no
route exists. Put "--" before a map file whose name starts with '-':

  torusroute -- -map.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &ExitError{Code: 1, Message: "Usage: " + cmd.UseLine()}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stdout, stderr, args[0], opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &ExitError{Code: 1, Message: err.Error() + "\nUsage: " + c.UseLine()}
	})

	f := cmd.Flags()
	f.StringVar(&opts.legendPath, "legend", "", "YAML file overriding the wall, entry, exit and path markers")
	f.StringVar(&opts.color, "color", "never", "Colorize the map: 'auto', 'always' or 'never'")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Diagnostics level on stderr: 'debug', 'info', 'warn' or 'error'")

	return cmd
}

// Run executes the command line with args and returns nil or an *ExitError.
func Run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return fail(err)
	}
	return nil
}

// run is the load → locate → search → overlay → print flow.
func run(ctx context.Context, stdout, stderr io.Writer, path string, opts *options) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return fail(err)
	}
	log := logging.New(stderr, level)

	profile, err := colorProfile(opts.color, stdout)
	if err != nil {
		return fail(err)
	}

	lg := legend.Default()
	if opts.legendPath != "" {
		if lg, err = legend.Load(opts.legendPath); err != nil {
			return fail(err)
		}
		log.Debug("legend loaded", "path", opts.legendPath)
	}

	g, err := torus.Load(path)
	if err != nil {
		return fail(err)
	}
	log.Debug("map loaded", "path", path, "width", g.Width, "height", g.Height)

	if _, err := Route(ctx, g, lg, log); err != nil {
		return fail(err)
	}

	if _, err := fmt.Fprintln(stdout, render.Colored(g, lg, profile)); err != nil {
		return fail(err)
	}
	return nil
}

// colorProfile resolves the --color flag; "auto" detects the terminal
// behind w and falls back to plain text when it is not one.
func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case "never":
		return termenv.Ascii, nil
	case "always":
		return termenv.ANSI256, nil
	case "auto":
		return termenv.NewOutput(w).ColorProfile(), nil
	}
	return termenv.Ascii, fmt.Errorf("invalid color %q: must be 'auto', 'always', or 'never'", mode)
}
