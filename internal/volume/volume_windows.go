//go:build windows

package volume

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

//nolint:gochecknoglobals // lazily resolved system procedure
var procGetDiskFreeSpaceW = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetDiskFreeSpaceW")

// Query returns the geometry of the volume mounted at root, which must be a
// volume root such as `C:\` (see Root).
func Query(root string) (Geometry, error) {
	rootPtr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return Geometry{}, fmt.Errorf("encoding volume root %q: %w", root, err)
	}

	var sectorsPerCluster, bytesPerSector, freeClusters, totalClusters uint32

	r1, _, callErr := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(rootPtr)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)),
	)
	if r1 == 0 {
		return Geometry{}, fmt.Errorf("GetDiskFreeSpace %s: %w", root, callErr)
	}

	return Geometry{
		SectorsPerCluster: uint64(sectorsPerCluster),
		BytesPerSector:    uint64(bytesPerSector),
		FreeClusters:      uint64(freeClusters),
		TotalClusters:     uint64(totalClusters),
	}, nil
}

// Root returns the root of the volume holding path, e.g. `D:\` or
// `\\server\share\`.
func Root(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	return filepath.VolumeName(abs) + `\`, nil
}

// DefaultRoot returns the root of the current drive.
func DefaultRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	return Root(cwd)
}
