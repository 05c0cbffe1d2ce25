package fs

import (
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
)

var _ ports.Verifier = (*Verifier)(nil)

// staleMessage is recorded for cached paths that no longer exist.
const staleMessage = "path no longer exists"

// Verifier re-checks cached matches against the file system before deletion.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify splits the selection into matches whose paths still exist and
// failure records for paths that disappeared since the scan.
// A match whose project directory is gone contributes only failures.
func (v *Verifier) Verify(selection []domain.MatchResult) ([]domain.MatchResult, []domain.DeleteOperationSelection) {
	var live []domain.MatchResult
	var stale []domain.DeleteOperationSelection

	for _, match := range selection {
		dirExists := exists(match.Directory)

		var keep []string
		var missing []domain.DeleteOperationResult
		for _, path := range match.Deletable {
			if dirExists && exists(path) {
				keep = append(keep, path)
				continue
			}
			missing = append(missing, domain.DeleteOperationResult{Path: path, ErrorMessage: staleMessage})
		}

		if len(keep) > 0 {
			m := match
			m.Deletable = keep
			live = append(live, m)
		}
		if len(missing) > 0 {
			stale = append(stale, domain.DeleteOperationSelection{
				Name:      match.Recognizer.Name,
				Directory: match.Directory,
				Results:   missing,
			})
		}
	}

	return live, stale
}
