package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsg/internal/adapters/logger"
	"go.trai.ch/wsg/internal/core/ports"
)

// NodeID is the unique identifier for the recognizer loader Graft node.
const NodeID graft.ID = "adapter.recognizer_loader"

func init() {
	graft.Register(graft.Node[ports.RecognizerLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RecognizerLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
