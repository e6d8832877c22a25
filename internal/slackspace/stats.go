package slackspace

import (
	"log/slog"
	"time"

	"github.com/idelchi/slackspace/internal/volume"
	"github.com/idelchi/slackspace/internal/walk"
)

// Stats holds the result of one scan.
type Stats struct {
	// Root is the directory that was scanned.
	Root string `json:"root"`
	// Pattern is the file name filter in effect.
	Pattern string `json:"pattern"`
	// Engine is the traversal engine that was used.
	Engine string `json:"engine"`
	// Mode is the traversal mode (parallel or sequential).
	Mode walk.Mode `json:"mode"`
	// Geometry is the allocation geometry of the scanned volume.
	Geometry volume.Geometry `json:"geometry"`
	// ClusterSize is the allocation unit in bytes.
	ClusterSize uint64 `json:"cluster_size"`
	// Capacity is the volume size in bytes.
	Capacity uint64 `json:"capacity"`
	// Free is the unallocated space on the volume in bytes.
	Free uint64 `json:"free"`
	// InUse is the allocated space on the volume in bytes.
	InUse uint64 `json:"in_use"`
	// Counts are the aggregated file observations.
	Counts
	// WastedPercent is 100*Wasted/Used, absent when Used is zero.
	WastedPercent *float64 `json:"wasted_percent,omitempty"`
	// Skipped is the number of entries that could not be read.
	Skipped int64 `json:"skipped"`
	// Elapsed is the time taken by the traversal.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan.
type Options struct {
	// Path is the directory to scan (empty = root of the current drive).
	Path string
	// Pattern is the glob file names must match (empty = all files).
	Pattern string
	// Sequential forces one operation at a time.
	Sequential bool
	// Workers bounds concurrency in parallel mode (0 = auto).
	Workers int
	// Engine selects the traversal engine (forkjoin or fastwalk).
	Engine string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Geometry queries the volume geometry (nil = volume.Query).
	Geometry func(root string) (volume.Geometry, error)
	// Logger receives debug output (nil = discard).
	Logger *slog.Logger
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
}

// mode returns the traversal mode selected by o.
func (o Options) mode() walk.Mode {
	if o.Sequential {
		return walk.Sequential
	}

	return walk.Parallel
}
