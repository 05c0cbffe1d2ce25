// Package volume reads file system usage through gopsutil.
package volume

import (
	"context"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VolumeInspector = (*Inspector)(nil)

// Inspector implements ports.VolumeInspector.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Usage returns the size and free space of the volume holding path.
func (i *Inspector) Usage(ctx context.Context, path string) (domain.VolumeUsage, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.VolumeUsage{}, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", path)
	}

	stat, err := disk.UsageWithContext(ctx, abs)
	if err != nil {
		return domain.VolumeUsage{}, zerr.With(zerr.Wrap(err, domain.ErrVolumeUsageFailed.Error()), "path", abs)
	}

	return domain.VolumeUsage{Path: abs, Total: stat.Total, Free: stat.Free}, nil
}
