package slackspace

import (
	"sync"
	"testing"
)

func TestWaste(t *testing.T) {
	tests := []struct {
		name        string
		length      uint64
		clusterSize uint64
		want        uint64
	}{
		{"empty file", 0, 4096, 0},
		{"exact cluster", 4096, 4096, 0},
		{"exact multiple", 3 * 4096, 4096, 0},
		{"one byte large cluster", 1, 524288, 524287},
		{"one byte over", 4097, 4096, 4095},
		{"small file", 100, 4096, 3996},
		{"spans two clusters", 5000, 4096, 3192},
		{"spans three clusters", 10000, 4096, 2288},
		{"cluster of one byte", 12345, 1, 0},
		{"zero cluster size", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Waste(tt.length, tt.clusterSize); got != tt.want {
				t.Fatalf("Waste(%d, %d) = %d, want %d", tt.length, tt.clusterSize, got, tt.want)
			}
		})
	}
}

func TestWaste_Bounds(t *testing.T) {
	for _, clusterSize := range []uint64{1, 2, 512, 4096, 65536} {
		for length := uint64(0); length < 3*clusterSize && length < 20000; length += 7 {
			w := Waste(length, clusterSize)
			if w >= clusterSize {
				t.Fatalf("Waste(%d, %d) = %d, not below cluster size", length, clusterSize, w)
			}

			if (w == 0) != (length%clusterSize == 0) {
				t.Fatalf("Waste(%d, %d) = %d, zero iff length is a multiple", length, clusterSize, w)
			}

			if (length+w)%clusterSize != 0 {
				t.Fatalf("Waste(%d, %d) = %d does not reach a cluster boundary", length, clusterSize, w)
			}
		}
	}
}

func TestTally_Record(t *testing.T) {
	tally := NewTally(4096)

	for _, length := range []uint64{100, 5000, 10000} {
		tally.Record(length)
	}

	got := tally.Counts()
	want := Counts{Files: 3, Used: 15100, Wasted: 9476}

	if got != want {
		t.Fatalf("Counts() = %+v, want %+v", got, want)
	}

	if tally.ClusterSize() != 4096 {
		t.Fatalf("ClusterSize() = %d, want 4096", tally.ClusterSize())
	}
}

func TestTally_ConcurrentRecord(t *testing.T) {
	const (
		workers = 16
		perWork = 1000
	)

	tally := NewTally(512)

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perWork {
				tally.Record(uint64(i))
			}
		}()
	}

	wg.Wait()

	var used, wasted uint64
	for i := range perWork {
		used += uint64(i)
		wasted += Waste(uint64(i), 512)
	}

	got := tally.Counts()
	want := Counts{Files: workers * perWork, Used: workers * used, Wasted: workers * wasted}

	if got != want {
		t.Fatalf("Counts() = %+v, want %+v", got, want)
	}
}

func TestCounts_WastedPercent(t *testing.T) {
	if _, ok := (Counts{}).WastedPercent(); ok {
		t.Fatal("expected no percentage when nothing is in use")
	}

	pct, ok := Counts{Files: 1, Used: 200, Wasted: 50}.WastedPercent()
	if !ok || pct != 25 {
		t.Fatalf("WastedPercent() = %v, %v; want 25, true", pct, ok)
	}
}
