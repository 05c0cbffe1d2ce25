package volume_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsg/internal/adapters/volume"
	"go.trai.ch/wsg/internal/core/domain"
)

func TestInspector_Usage(t *testing.T) {
	dir := t.TempDir()

	usage, err := volume.NewInspector().Usage(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, usage.Path)
	assert.Positive(t, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)
}

func TestInspector_Usage_MissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	_, err := volume.NewInspector().Usage(context.Background(), missing)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrVolumeUsageFailed.Error())
}
