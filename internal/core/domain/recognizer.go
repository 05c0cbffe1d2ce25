// Package domain contains the core domain models for recognizing and reclaiming build artifacts.
package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// SignatureKind describes what a marker path is expected to be.
// It is descriptive only: matching tests existence, not kind.
type SignatureKind string

const (
	// KindFile marks a path expected to be a regular file.
	KindFile SignatureKind = "file"
	// KindDir marks a path expected to be a directory.
	KindDir SignatureKind = "dir"
)

// PathSignature is a relative path tested for existence under a candidate directory.
type PathSignature struct {
	Kind SignatureKind `yaml:"kind"`
	Path string        `yaml:"path"`
}

// File returns a file signature for the given relative path.
func File(path string) PathSignature {
	return PathSignature{Kind: KindFile, Path: path}
}

// Dir returns a directory signature for the given relative path.
func Dir(path string) PathSignature {
	return PathSignature{Kind: KindDir, Path: path}
}

// String renders the signature with a trailing slash for directories.
func (s PathSignature) String() string {
	if s.Kind == KindDir {
		return s.Path + "/"
	}
	return s.Path
}

// Recognizer identifies a project type by its presence markers and names the
// subpaths that may be deleted when the project is recognized.
type Recognizer struct {
	Name      string          `yaml:"name"`
	Presence  []PathSignature `yaml:"presence"`
	Deletable []PathSignature `yaml:"deletable"`
}

// Equal reports whether two recognizers are structurally identical.
func (r Recognizer) Equal(other Recognizer) bool {
	return r.Name == other.Name &&
		slices.Equal(r.Presence, other.Presence) &&
		slices.Equal(r.Deletable, other.Deletable)
}

// Validate checks that the recognizer can be used for matching.
func (r Recognizer) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return zerr.Wrap(ErrInvalidRecognizer, "recognizer name is empty")
	}
	if strings.EqualFold(name, AllKeyword) {
		return zerr.Wrap(ErrReservedRecognizerName, "cannot validate recognizer")
	}
	if len(r.Presence) == 0 {
		return zerr.With(zerr.Wrap(ErrInvalidRecognizer, "no presence markers"), "recognizer", r.Name)
	}
	if len(r.Deletable) == 0 {
		return zerr.With(zerr.Wrap(ErrInvalidRecognizer, "no deletable markers"), "recognizer", r.Name)
	}
	for _, sig := range slices.Concat(r.Presence, r.Deletable) {
		if err := sig.validate(); err != nil {
			return zerr.With(err, "recognizer", r.Name)
		}
	}
	return nil
}

func (s PathSignature) validate() error {
	if s.Kind != KindFile && s.Kind != KindDir {
		return zerr.With(zerr.Wrap(ErrInvalidRecognizer, "unknown marker kind"), "kind", string(s.Kind))
	}
	// Markers must stay inside the candidate directory.
	if s.Path == "" || !filepath.IsLocal(s.Path) || filepath.Clean(s.Path) == "." {
		return zerr.With(zerr.Wrap(ErrInvalidRecognizer, "marker path must be relative and local"), "path", s.Path)
	}
	return nil
}

// Registry is an ordered, append-only list of recognizers.
// Registration order is the order recognizers are tried in during a walk.
type Registry struct {
	recognizers []Recognizer
}

// NewRegistry creates a registry holding the given recognizers in order.
func NewRegistry(recognizers ...Recognizer) (*Registry, error) {
	r := &Registry{recognizers: make([]Recognizer, 0, len(recognizers))}
	for _, rec := range recognizers {
		if err := r.Add(rec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a recognizer. Structurally equal recognizers are rejected.
func (r *Registry) Add(rec Recognizer) error {
	if slices.ContainsFunc(r.recognizers, rec.Equal) {
		return zerr.With(zerr.Wrap(ErrDuplicateRecognizer, "cannot register recognizer"), "recognizer", rec.Name)
	}
	r.recognizers = append(r.recognizers, rec)
	return nil
}

// Recognizers returns a copy of the registered recognizers in order.
func (r *Registry) Recognizers() []Recognizer {
	return slices.Clone(r.recognizers)
}

// Len returns the number of registered recognizers.
func (r *Registry) Len() int {
	return len(r.recognizers)
}

// Filter returns a new registry restricted by case-insensitive recognizer names.
// A non-empty include list keeps only the named recognizers; exclude then drops names.
func (r *Registry) Filter(include, exclude []string) (*Registry, error) {
	includeSet := lowerSet(include)
	excludeSet := lowerSet(exclude)

	filtered := &Registry{}
	for _, rec := range r.recognizers {
		name := strings.ToLower(rec.Name)
		if len(includeSet) > 0 {
			if _, ok := includeSet[name]; !ok {
				continue
			}
		}
		if _, ok := excludeSet[name]; ok {
			continue
		}
		filtered.recognizers = append(filtered.recognizers, rec)
	}

	if len(filtered.recognizers) == 0 {
		err := zerr.Wrap(ErrNoRecognizers, "filter matched nothing")
		err = zerr.With(err, "include", strings.Join(include, ","))
		return nil, zerr.With(err, "exclude", strings.Join(exclude, ","))
	}
	return filtered, nil
}

func lowerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
