package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/slackspace/internal/slackspace"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logic(ctx context.Context, options slackspace.Options, stdout, stderr io.Writer) error {
	// An interrupt stops the scan so the terminal is restored on the way out.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	enableProgress := options.Output != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	options.Logger = newLogger(stderr, options.Debug)

	// Simple progress callback that prints directly to stderr
	var progressHook func(slackspace.Counts)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(c slackspace.Counts) {
			msg := fmt.Sprintf("Scanning… %d files, %s in use, %s wasted",
				c.Files, humanize.IBytes(c.Used), humanize.IBytes(c.Wasted))
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := slackspace.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch options.Output {
	case "json":
		return PrintJSON(stats, stdout)
	case "table":
		return PrintTable(stats, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
