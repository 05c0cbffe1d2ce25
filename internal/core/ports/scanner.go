// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wsg/internal/core/domain"
)

// Scanner walks a directory tree and reports recognized projects with their deletable paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks root depth-first without following symbolic links.
	// Deletable subtrees of a match are pruned from the rest of the walk.
	// Any traversal failure aborts the scan and no partial results are returned.
	Scan(ctx context.Context, root string, registry *domain.Registry) ([]domain.MatchResult, error)
}

// Sizer computes the byte total of a path.
type Sizer interface {
	// SizeOf returns the sum of the lengths of all non-directory entries under path.
	SizeOf(path string) (uint64, error)
}
