package ports

import "go.trai.ch/wsg/internal/core/domain"

// Renderer presents results to the operator.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Listing prints every match followed by the total reclaimable size.
	Listing(results []domain.MatchResult)

	// Plan prints the matches that are about to be deleted.
	Plan(results []domain.MatchResult)

	// Report prints the outcome of a deletion batch.
	Report(selections []domain.DeleteOperationSelection)

	// Volume prints the free space left on the scanned volume.
	Volume(usage domain.VolumeUsage)

	// Recognizers prints the recognizers of a registry.
	Recognizers(registry *domain.Registry)
}
