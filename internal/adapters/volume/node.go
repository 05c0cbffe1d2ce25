package volume

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsg/internal/core/ports"
)

// NodeID is the unique identifier for the volume inspector Graft node.
const NodeID graft.ID = "adapter.volume"

func init() {
	graft.Register(graft.Node[ports.VolumeInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VolumeInspector, error) {
			return NewInspector(), nil
		},
	})
}
