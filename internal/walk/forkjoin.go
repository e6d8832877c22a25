package walk

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ForkJoin is the default engine. Every directory is read once; each
// sub-directory becomes a task of its own and each matched file a stat task,
// all submitted to one bounded pool.
type ForkJoin struct {
	opts Options
	log  *slog.Logger
}

// NewForkJoin creates a fork-join engine.
func NewForkJoin(opts Options) *ForkJoin {
	return &ForkJoin{opts: opts, log: opts.logger()}
}

// Enumerate implements Engine.
func (e *ForkJoin) Enumerate(ctx context.Context, root string, rec Recorder) error {
	p := newPool(e.opts.workers())

	e.log.Debug("walking", "root", root, "engine", ForkJoinEngine, "mode", e.opts.Mode, "workers", e.opts.workers())

	e.visit(ctx, p, root, rec)
	p.Wait()

	return ctx.Err()
}

// listing is the content of one directory, split into what to descend into
// and what to stat.
type listing struct {
	dirs  []string
	files []fs.DirEntry
}

// list reads dir. On error nothing is returned, so a directory is either
// enumerated completely or not at all.
func list(dir string, pattern *Pattern) (listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return listing{}, err
	}

	var l listing

	for _, entry := range entries {
		switch {
		case entry.IsDir():
			l.dirs = append(l.dirs, filepath.Join(dir, entry.Name()))
		case entry.Type().IsRegular() && pattern.Match(entry.Name()):
			l.files = append(l.files, entry)
		}
	}

	return l, nil
}

func (e *ForkJoin) visit(ctx context.Context, p *pool, dir string, rec Recorder) {
	if ctx.Err() != nil {
		return
	}

	l, err := list(dir, e.opts.Pattern)
	if err != nil {
		e.opts.skip(e.log, dir, err)

		return
	}

	for _, sub := range l.dirs {
		p.Go(func() { e.visit(ctx, p, sub, rec) })
	}

	for _, file := range l.files {
		p.Go(func() { e.opts.record(e.log, filepath.Join(dir, file.Name()), file, rec) })
	}
}
