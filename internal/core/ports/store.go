package ports

import (
	"time"

	"go.trai.ch/wsg/internal/core/domain"
)

// ResultCache persists scan results per scanned root.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultCache interface {
	// Location returns the entry path for root. Equivalent spellings of the
	// same directory map to the same location.
	Location(root string) (string, error)

	// Write stores results for root unless a fresh entry already exists.
	// It returns the entry location in both cases.
	Write(root string, results []domain.MatchResult, ttl time.Duration) (string, error)

	// Read returns the results for root when the entry is younger than ttl.
	Read(root string, ttl time.Duration) ([]domain.MatchResult, error)

	// Invalidate removes the entry for root.
	Invalidate(root string) error

	// ClearAll removes every entry regardless of age.
	ClearAll() error
}
