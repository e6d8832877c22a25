// Package walk enumerates the regular files below a directory, concurrently or
// sequentially, and reports the length of every file whose name matches a
// pattern to a Recorder.
//
// Entries that cannot be listed or stat'ed are skipped: a directory that
// cannot be read contributes nothing, a file that vanished between listing
// and stat is left out, and the walk carries on with everything else.
package walk

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
)

// Recorder receives the length of every matched file. Implementations must be
// safe for concurrent use.
type Recorder interface {
	Record(length uint64)
}

// Engine walks a directory tree and feeds matched files into a Recorder.
type Engine interface {
	// Enumerate visits root and all of its descendants. It returns once all
	// work has completed, or ctx.Err() if the context was cancelled.
	Enumerate(ctx context.Context, root string, rec Recorder) error
}

// Mode selects between parallel and sequential traversal.
type Mode int

const (
	// Parallel spreads directory reads and stats over a bounded pool.
	Parallel Mode = iota
	// Sequential performs one operation at a time on the calling goroutine.
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Parallel:
		return "parallel"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "parallel":
		*m = Parallel
	case "sequential":
		*m = Sequential
	default:
		return fmt.Errorf("unknown traversal mode %q", text)
	}

	return nil
}

// Engine names accepted by New.
const (
	ForkJoinEngine = "forkjoin"
	FastWalkEngine = "fastwalk"
)

// Engines lists the accepted engine names.
//
//nolint:gochecknoglobals // Config constant
var Engines = []string{ForkJoinEngine, FastWalkEngine}

// Options configures an Engine.
type Options struct {
	// Pattern filters files by base name (nil = all files).
	Pattern *Pattern
	// Mode selects parallel or sequential traversal.
	Mode Mode
	// Workers bounds the number of concurrent operations in parallel mode
	// (0 = DefaultWorkers).
	Workers int
	// Logger receives skipped entries (nil = discard).
	Logger *slog.Logger
	// OnSkip is called for every entry that was skipped because of an error.
	// It may be called concurrently.
	OnSkip func(path string, err error)
}

// DefaultWorkers returns the worker bound used in parallel mode when none is
// configured: one per usable CPU.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// New returns the engine registered under name.
func New(name string, opts Options) (Engine, error) {
	switch name {
	case "", ForkJoinEngine:
		return NewForkJoin(opts), nil
	case FastWalkEngine:
		return NewFastWalk(opts), nil
	default:
		return nil, fmt.Errorf("unknown engine %q: must be one of %v", name, Engines)
	}
}

// workers returns the effective pool size.
func (o Options) workers() int {
	if o.Mode == Sequential {
		return 1
	}

	if o.Workers > 0 {
		return o.Workers
	}

	return DefaultWorkers()
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

// skip reports an entry left out of the walk.
func (o Options) skip(log *slog.Logger, path string, err error) {
	if Ignorable(err) {
		log.Debug("skipping entry", "path", path, "err", err)
	} else {
		log.Warn("skipping entry after unexpected error", "path", path, "err", err)
	}

	if o.OnSkip != nil {
		o.OnSkip(path, err)
	}
}

// record feeds the length of the regular file d at path into rec. A file that
// can no longer be stat'ed, typically because it vanished after its directory
// was listed, is skipped.
func (o Options) record(log *slog.Logger, path string, d fs.DirEntry, rec Recorder) {
	info, err := d.Info()
	if err != nil {
		o.skip(log, path, err)

		return
	}

	rec.Record(uint64(info.Size())) //nolint:gosec // Size of a regular file is never negative
}
