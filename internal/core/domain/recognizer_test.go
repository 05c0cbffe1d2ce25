package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/zerr"
)

func nodeRecognizer() domain.Recognizer {
	return domain.Recognizer{
		Name:      "NodeJS",
		Presence:  []domain.PathSignature{domain.File("package.json")},
		Deletable: []domain.PathSignature{domain.Dir("node_modules")},
	}
}

func rustRecognizer() domain.Recognizer {
	return domain.Recognizer{
		Name:      "Rust",
		Presence:  []domain.PathSignature{domain.File("Cargo.toml")},
		Deletable: []domain.PathSignature{domain.Dir("target")},
	}
}

func TestRecognizer_Equal(t *testing.T) {
	a := nodeRecognizer()
	b := nodeRecognizer()
	assert.True(t, a.Equal(b))

	b.Deletable = append(b.Deletable, domain.Dir(".next"))
	assert.False(t, a.Equal(b))

	c := nodeRecognizer()
	c.Name = "Node"
	assert.False(t, a.Equal(c))
}

func TestRecognizer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Recognizer)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*domain.Recognizer) {},
		},
		{
			name:    "empty name",
			mutate:  func(r *domain.Recognizer) { r.Name = "  " },
			wantErr: domain.ErrInvalidRecognizer,
		},
		{
			name:    "reserved name",
			mutate:  func(r *domain.Recognizer) { r.Name = "ALL" },
			wantErr: domain.ErrReservedRecognizerName,
		},
		{
			name:    "no presence",
			mutate:  func(r *domain.Recognizer) { r.Presence = nil },
			wantErr: domain.ErrInvalidRecognizer,
		},
		{
			name:    "no deletable",
			mutate:  func(r *domain.Recognizer) { r.Deletable = nil },
			wantErr: domain.ErrInvalidRecognizer,
		},
		{
			name:    "absolute marker",
			mutate:  func(r *domain.Recognizer) { r.Deletable = []domain.PathSignature{domain.Dir("/tmp")} },
			wantErr: domain.ErrInvalidRecognizer,
		},
		{
			name:    "escaping marker",
			mutate:  func(r *domain.Recognizer) { r.Deletable = []domain.PathSignature{domain.Dir("../sibling")} },
			wantErr: domain.ErrInvalidRecognizer,
		},
		{
			name:    "root marker",
			mutate:  func(r *domain.Recognizer) { r.Deletable = []domain.PathSignature{domain.Dir(".")} },
			wantErr: domain.ErrInvalidRecognizer,
		},
		{
			name: "unknown kind",
			mutate: func(r *domain.Recognizer) {
				r.Presence = []domain.PathSignature{{Kind: "socket", Path: "x"}}
			},
			wantErr: domain.ErrInvalidRecognizer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := nodeRecognizer()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			// Callers annotate validation errors; the sentinel must survive that.
			require.ErrorIs(t, zerr.With(err, "index", 0), tt.wantErr)
		})
	}
}

func TestPathSignature_String(t *testing.T) {
	assert.Equal(t, "package.json", domain.File("package.json").String())
	assert.Equal(t, "node_modules/", domain.Dir("node_modules").String())
}

func TestRegistry_Add(t *testing.T) {
	reg, err := domain.NewRegistry(nodeRecognizer(), rustRecognizer())
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	err = reg.Add(nodeRecognizer())
	require.ErrorIs(t, err, domain.ErrDuplicateRecognizer)
	assert.Equal(t, 2, reg.Len())

	recs := reg.Recognizers()
	require.Len(t, recs, 2)
	assert.Equal(t, "NodeJS", recs[0].Name)
	assert.Equal(t, "Rust", recs[1].Name)

	// Mutating the returned slice must not leak into the registry.
	recs[0].Name = "changed"
	assert.Equal(t, "NodeJS", reg.Recognizers()[0].Name)
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := domain.NewRegistry(nodeRecognizer(), nodeRecognizer())
	require.ErrorIs(t, err, domain.ErrDuplicateRecognizer)
}

func TestRegistry_Filter(t *testing.T) {
	reg, err := domain.NewRegistry(nodeRecognizer(), rustRecognizer())
	require.NoError(t, err)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
		wantErr bool
	}{
		{name: "no filters", want: []string{"NodeJS", "Rust"}},
		{name: "include case insensitive", include: []string{"rust"}, want: []string{"Rust"}},
		{name: "exclude", exclude: []string{"NODEJS"}, want: []string{"Rust"}},
		{name: "include then exclude", include: []string{"rust", "nodejs"}, exclude: []string{"rust"}, want: []string{"NodeJS"}},
		{name: "nothing left", include: []string{"python"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := reg.Filter(tt.include, tt.exclude)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrNoRecognizers)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, r := range filtered.Recognizers() {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	assert.Equal(t, 2, reg.Len(), "filtering must not modify the source registry")
}
