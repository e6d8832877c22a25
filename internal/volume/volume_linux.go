//go:build linux

package volume

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Query returns the geometry of the filesystem containing path.
// Block counts are in units of the fragment size, which falls back to the
// block size on filesystems that leave it unset.
func Query(path string) (Geometry, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Geometry{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	size := st.Frsize
	if size <= 0 {
		size = st.Bsize
	}

	//nolint:gosec // block sizes come from the kernel and are positive
	return fromBlocks(uint64(size), st.Bfree, st.Blocks), nil
}
