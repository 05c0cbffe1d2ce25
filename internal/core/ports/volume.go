package ports

import (
	"context"

	"go.trai.ch/wsg/internal/core/domain"
)

// VolumeInspector reports free space on the volume holding a path.
//
//go:generate go run go.uber.org/mock/mockgen -source=volume.go -destination=mocks/mock_volume.go -package=mocks
type VolumeInspector interface {
	Usage(ctx context.Context, path string) (domain.VolumeUsage, error)
}
