package ports

import "go.trai.ch/wsg/internal/core/domain"

// RecognizerLoader builds the recognizer registry used for scanning.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type RecognizerLoader interface {
	// Load returns the built-in recognizers extended by the optional user
	// configuration found from cwd. A missing configuration file is not an error.
	Load(cwd string) (*domain.Registry, error)
}
