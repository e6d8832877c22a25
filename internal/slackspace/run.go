package slackspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/idelchi/slackspace/internal/volume"
	"github.com/idelchi/slackspace/internal/walk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrZeroClusterSize is returned when the volume reports no cluster size.
var ErrZeroClusterSize = errors.New("volume reports a cluster size of zero")

// startProgressReporter invokes hook with the current counts on each tick
// until ctx is done or the returned stop function is called. The counts may be
// mid-update; they are for display only. Once stop returns, hook is not
// called again. stop may be called more than once.
func startProgressReporter(ctx context.Context, t *Tally, hook func(Counts), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(t.Counts())
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// Run scans opt.Path and returns the aggregated waste statistics.
//
// It resolves the volume holding opt.Path, derives the cluster size from its
// geometry and refuses to scan when that fails or yields zero. It then walks
// the tree with the selected engine, recording every file matching
// opt.Pattern. Unreadable entries are skipped and counted in Stats.Skipped.
//
// Progress updates are sent to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(Counts)) (*Stats, error) {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if opt.Path == "" {
		root, err := volume.DefaultRoot()
		if err != nil {
			return nil, err
		}

		opt.Path = root
	}

	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	pattern, err := walk.CompilePattern(opt.Pattern)
	if err != nil {
		return nil, err
	}

	query := opt.Geometry
	if query == nil {
		query = volume.Query
	}

	volRoot, err := volume.Root(opt.Path)
	if err != nil {
		return nil, err
	}

	geo, err := query(volRoot)
	if err != nil {
		return nil, fmt.Errorf("querying volume geometry of %q: %w", volRoot, err)
	}

	clusterSize := geo.ClusterSize()
	if clusterSize == 0 {
		return nil, fmt.Errorf("%q: %w", volRoot, ErrZeroClusterSize)
	}

	log.Debug("volume geometry",
		"root", volRoot,
		"sectors_per_cluster", geo.SectorsPerCluster,
		"bytes_per_sector", geo.BytesPerSector,
		"free_clusters", geo.FreeClusters,
		"total_clusters", geo.TotalClusters,
	)

	var skipped atomic.Int64

	engine, err := walk.New(opt.Engine, walk.Options{
		Pattern: pattern,
		Mode:    opt.mode(),
		Workers: opt.Workers,
		Logger:  log,
		OnSkip:  func(string, error) { skipped.Add(1) },
	})
	if err != nil {
		return nil, err
	}

	tally := NewTally(clusterSize)

	stopProgress := startProgressReporter(ctx, tally, progressHook, opt.ProgressInterval)
	defer stopProgress()

	start := time.Now()

	if err := engine.Enumerate(ctx, opt.Path, tally); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)

	stopProgress()

	counts := tally.Counts()

	stats := &Stats{
		Root:        opt.Path,
		Pattern:     pattern.String(),
		Engine:      engineName(opt.Engine),
		Mode:        opt.mode(),
		Geometry:    geo,
		ClusterSize: tally.ClusterSize(),
		Capacity:    geo.Capacity(),
		Free:        geo.Free(),
		InUse:       geo.InUse(),
		Counts:      counts,
		Skipped:     skipped.Load(),
		Elapsed:     elapsed,
	}

	if pct, ok := counts.WastedPercent(); ok {
		stats.WastedPercent = &pct
	}

	log.Debug("scan complete", "files", counts.Files, "skipped", stats.Skipped, "elapsed", elapsed)

	return stats, nil
}

func engineName(name string) string {
	if name == "" {
		return walk.ForkJoinEngine
	}

	return name
}
