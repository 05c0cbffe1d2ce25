package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsg/internal/adapters/fs"
	"go.trai.ch/wsg/internal/core/domain"
)

func TestVerifier_Verify(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/node_modules/x", 1)
	writeFile(t, root, "b/node_modules/x", 1)

	gone := filepath.Join(root, "c")
	selection := []domain.MatchResult{
		{Index: 0, Recognizer: node, Directory: filepath.Join(root, "a"), Deletable: []string{filepath.Join(root, "a", "node_modules")}},
		{Index: 1, Recognizer: node, Directory: filepath.Join(root, "b"), Deletable: []string{filepath.Join(root, "b", "node_modules")}},
		{Index: 2, Recognizer: node, Directory: gone, Deletable: []string{filepath.Join(gone, "node_modules")}},
	}
	require.NoError(t, os.RemoveAll(filepath.Join(root, "b", "node_modules")))

	live, stale := fs.NewVerifier().Verify(selection)

	require.Len(t, live, 1)
	assert.Equal(t, 0, live[0].Index)

	require.Len(t, stale, 2)
	assert.Equal(t, filepath.Join(root, "b"), stale[0].Directory)
	assert.Equal(t, gone, stale[1].Directory)
	for _, s := range stale {
		require.Len(t, s.Results, 1)
		assert.False(t, s.Results[0].Success)
		assert.Equal(t, "path no longer exists", s.Results[0].ErrorMessage)
	}
}
