package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Sizer = (*Sizer)(nil)

// Sizer computes byte totals of files and directory trees.
type Sizer struct{}

// NewSizer creates a new Sizer.
func NewSizer() *Sizer {
	return &Sizer{}
}

// SizeOf returns the sum of the lengths of all non-directory entries under path.
// A file path reports its own length. Symbolic links are not followed and
// contribute the length of the link itself.
func (s *Sizer) SizeOf(path string) (uint64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSizeFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return fileSize(info), nil
	}

	var total uint64
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		entryInfo, err := d.Info()
		if err != nil {
			return err
		}
		total += fileSize(entryInfo)
		return nil
	})
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSizeFailed.Error()), "path", path)
	}

	return total, nil
}

func fileSize(info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}
	return uint64(info.Size())
}
