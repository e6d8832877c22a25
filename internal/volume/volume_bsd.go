//go:build darwin || freebsd

package volume

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Query returns the geometry of the filesystem containing path.
func Query(path string) (Geometry, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Geometry{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	// Bsize is uint32 on darwin and uint64 on freebsd.
	//nolint:unconvert,gosec // portable conversions of kernel-reported values
	return fromBlocks(uint64(st.Bsize), uint64(st.Bfree), uint64(st.Blocks)), nil
}
