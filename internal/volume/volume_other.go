//go:build !linux && !darwin && !freebsd && !windows

package volume

// Query always fails on this platform.
func Query(path string) (Geometry, error) {
	return Geometry{}, ErrUnsupported
}
