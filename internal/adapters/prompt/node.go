package prompt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsg/internal/core/ports"
)

// NodeID is the unique identifier for the confirmation prompt Graft node.
const NodeID graft.ID = "adapter.prompter"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prompter, error) {
			return New(), nil
		},
	})
}
