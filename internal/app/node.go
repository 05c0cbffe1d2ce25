package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsg/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/adapters/prompt" //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/adapters/render" //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/adapters/volume" //nolint:depguard // Wired in app layer
	"go.trai.ch/wsg/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WalkerNodeID,
			cache.NodeID,
			fs.VerifierNodeID,
			fs.DeleterNodeID,
			render.NodeID,
			prompt.NodeID,
			volume.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RecognizerLoader](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			resultCache, err := graft.Dep[ports.ResultCache](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			deleter, err := graft.Dep[ports.Deleter](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}

			volumes, err := graft.Dep[ports.VolumeInspector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, scanner, resultCache, verifier, deleter, renderer, prompter, volumes, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}
