package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsg/internal/adapters/cache"
	"go.trai.ch/wsg/internal/core/domain"
)

func sampleResults(root string) []domain.MatchResult {
	return []domain.MatchResult{
		{
			Index: 0,
			Recognizer: domain.Recognizer{
				Name:      "Flutter",
				Presence:  []domain.PathSignature{domain.File("pubspec.yaml")},
				Deletable: []domain.PathSignature{domain.Dir("build")},
			},
			Directory: filepath.Join(root, "app"),
			Size:      10_000_000,
			Deletable: []string{filepath.Join(root, "app", "build")},
		},
		{
			Index: 1,
			Recognizer: domain.Recognizer{
				Name:      "NodeJS",
				Presence:  []domain.PathSignature{domain.File("package.json")},
				Deletable: []domain.PathSignature{domain.Dir("node_modules")},
			},
			Directory: filepath.Join(root, "web"),
			Size:      5_000_000,
			Deletable: []string{filepath.Join(root, "web", "node_modules")},
		},
	}
}

func newStore(t *testing.T) (*cache.Store, clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Now())
	return cache.NewStoreWithPath(t.TempDir(), clock), clock
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newStore(t)
	root := t.TempDir()
	results := sampleResults(root)

	location, err := store.Write(root, results, domain.DefaultCacheTTL)
	require.NoError(t, err)
	assert.FileExists(t, location)
	assert.Equal(t, store.Dir(), filepath.Dir(location))

	got, err := store.Read(root, domain.DefaultCacheTTL)
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestStore_Read_ZeroTTLIsExpired(t *testing.T) {
	store, _ := newStore(t)
	root := t.TempDir()

	_, err := store.Write(root, sampleResults(root), domain.DefaultCacheTTL)
	require.NoError(t, err)

	_, err = store.Read(root, 0)
	require.ErrorIs(t, err, domain.ErrCacheExpired)
}

func TestStore_Read_ExpiresAfterTTL(t *testing.T) {
	store, clock := newStore(t)
	root := t.TempDir()

	_, err := store.Write(root, sampleResults(root), time.Minute)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	_, err = store.Read(root, time.Minute)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = store.Read(root, time.Minute)
	require.ErrorIs(t, err, domain.ErrCacheExpired)
}

func TestStore_Read_Missing(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Read(t.TempDir(), domain.DefaultCacheTTL)
	require.ErrorIs(t, err, domain.ErrCacheMissing)
}

func TestStore_Read_Corrupt(t *testing.T) {
	store, _ := newStore(t)
	root := t.TempDir()

	location, err := store.Write(root, sampleResults(root), domain.DefaultCacheTTL)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(location, []byte("results: [ {unterminated"), 0o600))

	_, err = store.Read(root, domain.DefaultCacheTTL)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheSerializationFailure.Error())
}

func TestStore_Read_ForeignRoot(t *testing.T) {
	store, _ := newStore(t)
	root := t.TempDir()

	location, err := store.Location(root)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o750))
	require.NoError(t, os.WriteFile(location, []byte("root: /somewhere/else\nresults: []\n"), 0o600))

	_, err = store.Read(root, domain.DefaultCacheTTL)
	require.ErrorIs(t, err, domain.ErrCacheMissing)
}

func TestStore_Write_SkipsWhenFresh(t *testing.T) {
	store, clock := newStore(t)
	root := t.TempDir()
	first := sampleResults(root)

	_, err := store.Write(root, first, time.Minute)
	require.NoError(t, err)

	// A fresh entry is not overwritten.
	_, err = store.Write(root, first[:1], time.Minute)
	require.NoError(t, err)
	got, err := store.Read(root, time.Minute)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Once stale, the next write replaces it.
	clock.Advance(2 * time.Minute)
	_, err = store.Write(root, first[:1], time.Minute)
	require.NoError(t, err)

	got, err = store.Read(root, time.Hour)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_Write_ZeroTTLAlwaysOverwrites(t *testing.T) {
	store, _ := newStore(t)
	root := t.TempDir()
	results := sampleResults(root)

	_, err := store.Write(root, results, 0)
	require.NoError(t, err)
	_, err = store.Write(root, results[:1], 0)
	require.NoError(t, err)

	got, err := store.Read(root, time.Hour)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_Location(t *testing.T) {
	store, _ := newStore(t)
	base := t.TempDir()
	ab := filepath.Join(base, "a", "b")

	plain, err := store.Location(ab)
	require.NoError(t, err)

	trailing, err := store.Location(ab + string(filepath.Separator))
	require.NoError(t, err)

	dotted, err := store.Location(filepath.Join(base, "a") + string(filepath.Separator) + "." + string(filepath.Separator) + "b")
	require.NoError(t, err)

	parent, err := store.Location(filepath.Join(base, "a", "c", "..", "b"))
	require.NoError(t, err)

	other, err := store.Location(filepath.Join(base, "a", "c"))
	require.NoError(t, err)

	assert.Equal(t, plain, trailing)
	assert.Equal(t, plain, dotted)
	assert.Equal(t, plain, parent)
	assert.NotEqual(t, plain, other)
	assert.Equal(t, ".yaml", filepath.Ext(plain))
}

func TestStore_Location_RelativeRoot(t *testing.T) {
	store, _ := newStore(t)
	dir := t.TempDir()
	t.Chdir(dir)

	rel, err := store.Location(".")
	require.NoError(t, err)
	abs, err := store.Location(dir)
	require.NoError(t, err)

	assert.Equal(t, abs, rel)
}

func TestStore_Invalidate(t *testing.T) {
	store, _ := newStore(t)
	root := t.TempDir()

	err := store.Invalidate(root)
	require.ErrorIs(t, err, domain.ErrCacheMissing)

	location, err := store.Write(root, sampleResults(root), domain.DefaultCacheTTL)
	require.NoError(t, err)

	require.NoError(t, store.Invalidate(root))
	assert.NoFileExists(t, location)

	_, err = store.Read(root, domain.DefaultCacheTTL)
	require.ErrorIs(t, err, domain.ErrCacheMissing)
}

func TestStore_ClearAll(t *testing.T) {
	t.Run("removes every entry", func(t *testing.T) {
		store, _ := newStore(t)
		rootA, rootB := t.TempDir(), t.TempDir()

		_, err := store.Write(rootA, sampleResults(rootA), domain.DefaultCacheTTL)
		require.NoError(t, err)
		_, err = store.Write(rootB, sampleResults(rootB), domain.DefaultCacheTTL)
		require.NoError(t, err)

		require.NoError(t, store.ClearAll())

		entries, err := os.ReadDir(store.Dir())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing namespace is not an error", func(t *testing.T) {
		store := cache.NewStoreWithPath(filepath.Join(t.TempDir(), "absent"), clockwork.NewRealClock())
		require.NoError(t, store.ClearAll())
	})
}
