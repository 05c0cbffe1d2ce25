package ports

import "go.trai.ch/wsg/internal/core/domain"

// Verifier re-checks cached matches before they are deleted.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Verify returns the matches restricted to paths that still exist, and a
	// failure record for every path that has disappeared.
	Verify(selection []domain.MatchResult) ([]domain.MatchResult, []domain.DeleteOperationSelection)
}
