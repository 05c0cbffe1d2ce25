// Package cache persists scan results between invocations, one file per scanned root.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ResultCache = (*Store)(nil)

// entry is the on-disk layout of a cache file.
type entry struct {
	Root    string               `yaml:"root"`
	Results []domain.MatchResult `yaml:"results"`
}

// Store implements ports.ResultCache with YAML files named by the hash of the scanned root.
// Freshness is derived from the file modification time only.
type Store struct {
	dir   string
	clock clockwork.Clock
}

// NewStore creates a Store in the default namespace under the system temp dir.
func NewStore() *Store {
	return NewStoreWithPath(domain.DefaultCachePath(), clockwork.NewRealClock())
}

// NewStoreWithPath creates a Store rooted at dir using clock for age checks.
func NewStoreWithPath(dir string, clock clockwork.Clock) *Store {
	return &Store{dir: dir, clock: clock}
}

// Dir returns the namespace directory holding the cache files.
func (s *Store) Dir() string {
	return s.dir
}

// Location returns the cache file path for root.
func (s *Store) Location(root string) (string, error) {
	abs, err := normalize(root)
	if err != nil {
		return "", err
	}
	return s.locationFor(abs), nil
}

// Write stores results for root unless a fresh entry already exists.
func (s *Store) Write(root string, results []domain.MatchResult, ttl time.Duration) (string, error) {
	abs, err := normalize(root)
	if err != nil {
		return "", err
	}
	location := s.locationFor(abs)

	if info, err := os.Stat(location); err == nil && s.isFresh(info, ttl) {
		return location, nil
	}

	data, err := yaml.Marshal(entry{Root: abs, Results: results})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheSerializationFailure.Error()), "root", abs)
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "dir", s.dir)
	}

	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	if err := os.WriteFile(location, data, domain.PrivateFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "location", location)
	}

	return location, nil
}

// Read returns the cached results for root when the entry is younger than ttl.
func (s *Store) Read(root string, ttl time.Duration) ([]domain.MatchResult, error) {
	abs, err := normalize(root)
	if err != nil {
		return nil, err
	}
	location := s.locationFor(abs)

	info, err := os.Stat(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrCacheMissing, "no scan results cached"), "root", abs)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "location", location)
	}

	if !s.isFresh(info, ttl) {
		err := zerr.With(zerr.Wrap(domain.ErrCacheExpired, "cached scan results are stale"), "root", abs)
		return nil, zerr.With(err, "age", s.clock.Since(info.ModTime()).Round(time.Second).String())
	}

	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "location", location)
	}

	var e entry
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheSerializationFailure.Error()), "location", location)
	}

	// A different root behind the same name means a hash collision.
	if e.Root != abs {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheMissing, "cache entry belongs to another root"), "root", abs)
	}

	return e.Results, nil
}

// Invalidate removes the entry for root.
func (s *Store) Invalidate(root string) error {
	location, err := s.Location(root)
	if err != nil {
		return err
	}

	if err := os.Remove(location); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrCacheMissing, "nothing to invalidate"), "root", root)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "location", location)
	}

	return nil
}

// ClearAll removes every regular file in the namespace directory regardless of age.
func (s *Store) ClearAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "dir", s.dir)
	}

	var errs error
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCacheIOFailure.Error()), "location", path))
		}
	}

	return errs
}

func (s *Store) locationFor(absRoot string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x%s", xxhash.Sum64String(absRoot), domain.CacheFileExt))
}

// isFresh reports whether now < mtime + ttl. A zero ttl is never fresh.
func (s *Store) isFresh(info fs.FileInfo, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return s.clock.Now().Before(info.ModTime().Add(ttl))
}

// normalize makes root absolute and lexically clean so that equivalent
// spellings of a directory share one entry.
func normalize(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}
	return filepath.Clean(abs), nil
}
