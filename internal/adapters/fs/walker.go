// Package fs provides file system adapters for scanning, sizing and deleting build artifacts.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scanner = (*Walker)(nil)

// Walker finds recognized projects in a directory tree.
type Walker struct {
	sizer  ports.Sizer
	logger ports.Logger
}

// NewWalker creates a new Walker.
func NewWalker(sizer ports.Sizer, logger ports.Logger) *Walker {
	return &Walker{sizer: sizer, logger: logger}
}

// Scan walks root in lexical order without following symbolic links and
// matches every directory against the registry.
func (w *Walker) Scan(ctx context.Context, root string, registry *domain.Registry) ([]domain.MatchResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}

	recognizers := registry.Recognizers()
	pruned := make(map[string]struct{})
	var results []domain.MatchResult

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return zerr.With(zerr.Wrap(walkErr, domain.ErrWalkFailed.Error()), "path", path)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if isPruned(pruned, absRoot, path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		for _, rec := range recognizers {
			if !anyExists(path, rec.Presence) {
				continue
			}
			deletable, ok := firstDeletable(pruned, absRoot, path, rec.Deletable)
			if !ok {
				continue
			}

			pruned[deletable] = struct{}{}
			results = append(results, domain.MatchResult{
				Index:      len(results),
				Recognizer: rec,
				Directory:  path,
				Size:       w.sizeOrZero(deletable),
				Deletable:  []string{deletable},
			})
			w.logger.Debug(fmt.Sprintf("matched %s in %s", rec.Name, path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (w *Walker) sizeOrZero(path string) uint64 {
	size, err := w.sizer.SizeOf(path)
	if err != nil {
		w.logger.Warn(fmt.Sprintf("could not compute size of %s, reporting 0: %v", path, err))
		return 0
	}
	return size
}

// isPruned reports whether path equals or lies below a pruned path.
func isPruned(pruned map[string]struct{}, root, path string) bool {
	if len(pruned) == 0 {
		return false
	}
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := pruned[p]; ok {
			return true
		}
		if p == root || p == filepath.Dir(p) {
			return false
		}
	}
}

// containsPruned reports whether a pruned path lies strictly below path.
func containsPruned(pruned map[string]struct{}, path string) bool {
	prefix := path + string(filepath.Separator)
	for p := range pruned {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// anyExists reports whether at least one marker exists below dir.
// Probe errors count as absence.
func anyExists(dir string, markers []domain.PathSignature) bool {
	for _, m := range markers {
		if exists(filepath.Join(dir, m.Path)) {
			return true
		}
	}
	return false
}

// firstDeletable returns the first existing deletable marker below dir that
// does not overlap a subtree claimed by an earlier match.
func firstDeletable(pruned map[string]struct{}, root, dir string, markers []domain.PathSignature) (string, bool) {
	for _, m := range markers {
		candidate := filepath.Join(dir, m.Path)
		if isPruned(pruned, root, candidate) || containsPruned(pruned, candidate) {
			continue
		}
		if exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
