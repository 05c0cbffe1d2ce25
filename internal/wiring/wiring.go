// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wsg/internal/adapters/cache"
	_ "go.trai.ch/wsg/internal/adapters/config"
	_ "go.trai.ch/wsg/internal/adapters/fs"
	_ "go.trai.ch/wsg/internal/adapters/logger"
	_ "go.trai.ch/wsg/internal/adapters/prompt"
	_ "go.trai.ch/wsg/internal/adapters/render"
	_ "go.trai.ch/wsg/internal/adapters/volume"
	// Register app nodes.
	_ "go.trai.ch/wsg/internal/app"
)
