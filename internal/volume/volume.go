// Package volume reports the allocation geometry of the volume holding a path.
package volume

import "errors"

// ErrUnsupported is returned by Query on platforms without a geometry source.
var ErrUnsupported = errors.New("volume geometry is not supported on this platform")

// sectorSize is the sector size assumed when a platform only reports a block
// size.
const sectorSize = 512

// Geometry describes the allocation units of a volume.
type Geometry struct {
	// SectorsPerCluster is the number of sectors in one cluster.
	SectorsPerCluster uint64 `json:"sectors_per_cluster"`
	// BytesPerSector is the size of one sector.
	BytesPerSector uint64 `json:"bytes_per_sector"`
	// FreeClusters is the number of unallocated clusters.
	FreeClusters uint64 `json:"free_clusters"`
	// TotalClusters is the number of clusters on the volume.
	TotalClusters uint64 `json:"total_clusters"`
}

// ClusterSize returns the cluster size in bytes.
func (g Geometry) ClusterSize() uint64 {
	return g.BytesPerSector * g.SectorsPerCluster
}

// Capacity returns the volume size in bytes.
func (g Geometry) Capacity() uint64 {
	return g.TotalClusters * g.ClusterSize()
}

// Free returns the unallocated space in bytes.
func (g Geometry) Free() uint64 {
	return g.FreeClusters * g.ClusterSize()
}

// InUse returns the allocated space in bytes.
func (g Geometry) InUse() uint64 {
	if g.FreeClusters > g.TotalClusters {
		return 0
	}

	return (g.TotalClusters - g.FreeClusters) * g.ClusterSize()
}

// fromBlocks builds a Geometry from a block-oriented filesystem report,
// splitting the block size into 512-byte sectors when it divides evenly.
func fromBlocks(blockSize, freeBlocks, totalBlocks uint64) Geometry {
	g := Geometry{
		SectorsPerCluster: 1,
		BytesPerSector:    blockSize,
		FreeClusters:      freeBlocks,
		TotalClusters:     totalBlocks,
	}

	if blockSize >= sectorSize && blockSize%sectorSize == 0 {
		g.SectorsPerCluster = blockSize / sectorSize
		g.BytesPerSector = sectorSize
	}

	return g
}
