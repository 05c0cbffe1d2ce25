package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsg/internal/adapters/logger" //nolint:depguard // Logger node ID
	"go.trai.ch/wsg/internal/core/ports"
)

const (
	// SizerNodeID is the unique identifier for the size calculator Graft node.
	SizerNodeID graft.ID = "adapter.fs.sizer"
	// WalkerNodeID is the unique identifier for the scanner Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// DeleterNodeID is the unique identifier for the deletion executor Graft node.
	DeleterNodeID graft.ID = "adapter.fs.deleter"
	// VerifierNodeID is the unique identifier for the path verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	graft.Register(graft.Node[ports.Sizer]{
		ID:        SizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sizer, error) {
			return NewSizer(), nil
		},
	})

	graft.Register(graft.Node[ports.Scanner]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SizerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			sizer, err := graft.Dep[ports.Sizer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(sizer, log), nil
		},
	})

	graft.Register(graft.Node[ports.Deleter]{
		ID:        DeleterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Deleter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDeleter(log), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
