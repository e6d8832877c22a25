package slackspace

import "sync/atomic"

// Waste returns the number of unused bytes in the last cluster allocated to a
// file of the given length. It is zero when length is a multiple of
// clusterSize, and always less than clusterSize.
func Waste(length, clusterSize uint64) uint64 {
	if clusterSize == 0 {
		return 0
	}

	return (clusterSize - length%clusterSize) % clusterSize
}

// Counts is a snapshot of the counters of a Tally.
type Counts struct {
	// Files is the number of files examined.
	Files uint64 `json:"files"`
	// Used is the sum of file lengths in bytes.
	Used uint64 `json:"used_bytes"`
	// Wasted is the sum of per-file slack in bytes.
	Wasted uint64 `json:"wasted_bytes"`
}

// WastedPercent returns 100*Wasted/Used. ok is false when nothing is in use.
func (c Counts) WastedPercent() (pct float64, ok bool) {
	if c.Used == 0 {
		return 0, false
	}

	return 100.0 * float64(c.Wasted) / float64(c.Used), true
}

// Tally aggregates file observations for one scan. Record may be called from
// any number of goroutines; each counter is updated atomically, but the three
// updates of a single Record are not one transaction, so Counts is only exact
// once every writer has returned.
type Tally struct {
	clusterSize uint64

	files  atomic.Uint64
	used   atomic.Uint64
	wasted atomic.Uint64
}

// NewTally creates a Tally for the given cluster size. The caller must not
// record against a zero cluster size; Run refuses to scan in that case.
func NewTally(clusterSize uint64) *Tally {
	return &Tally{clusterSize: clusterSize}
}

// ClusterSize returns the cluster size the tally was created with.
func (t *Tally) ClusterSize() uint64 {
	return t.clusterSize
}

// Record accounts for one file of the given length.
func (t *Tally) Record(length uint64) {
	t.files.Add(1)
	t.used.Add(length)
	t.wasted.Add(Waste(length, t.clusterSize))
}

// Counts returns the current counter values.
func (t *Tally) Counts() Counts {
	return Counts{
		Files:  t.files.Load(),
		Used:   t.used.Load(),
		Wasted: t.wasted.Load(),
	}
}
