package ports

import "go.trai.ch/wsg/internal/core/domain"

// Deleter removes the deletable paths of the selected matches.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Deleter interface {
	// Execute attempts every path of every match and never aborts early.
	// The outcome of each path is reported in the returned selections.
	Execute(selection []domain.MatchResult) []domain.DeleteOperationSelection
}
