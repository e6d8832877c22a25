package walk

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/charlievieth/fastwalk"
)

// FastWalk runs the walk on fastwalk's worker pool. Sequential mode uses a
// single fastwalk worker.
type FastWalk struct {
	opts Options
	log  *slog.Logger
}

// NewFastWalk creates a fastwalk-backed engine.
func NewFastWalk(opts Options) *FastWalk {
	return &FastWalk{opts: opts, log: opts.logger()}
}

// Enumerate implements Engine.
func (e *FastWalk) Enumerate(ctx context.Context, root string, rec Recorder) error {
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: e.opts.workers(),
	}

	e.log.Debug("walking", "root", root, "engine", FastWalkEngine, "mode", e.opts.Mode, "workers", conf.NumWorkers)

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// fastwalk reports unreadable directories here, after their
			// own callback already ran; nothing below them is visited.
			e.opts.skip(e.log, path, err)

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if !e.opts.Pattern.Match(d.Name()) {
			return nil
		}

		e.opts.record(e.log, path, d, rec)

		return nil
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	if walkErr != nil {
		// Only the initial stat of root can fail here.
		e.opts.skip(e.log, root, walkErr)
	}

	return nil
}
