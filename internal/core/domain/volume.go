package domain

// VolumeUsage describes the file system holding a scanned root.
type VolumeUsage struct {
	Path  string
	Total uint64
	Free  uint64
}
