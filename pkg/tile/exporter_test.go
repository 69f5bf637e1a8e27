package tile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExporter_Quality(t *testing.T) {
	assert.Equal(t, 80, NewExporter(80).Quality)
	assert.Equal(t, DefaultQuality, NewExporter(0).Quality)
	assert.Equal(t, DefaultQuality, NewExporter(101).Quality)
}

func TestOutputPath(t *testing.T) {
	first := filepath.Join("splashes", "266001.jpg")
	assert.Equal(t, filepath.Join("splashes", "tile.jpg"), OutputPath(first, "tile"))
}

func TestExport_WritesJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tile.jpg")

	require.NoError(t, NewExporter(90).Export(createTestImage(64, 32, blue), path))
	assert.Equal(t, Resolution{64, 32}, decodedSize(t, path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestExport_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.jpg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, NewExporter(90).Export(createTestImage(16, 16, red), path))
	assert.Equal(t, Resolution{16, 16}, decodedSize(t, path))
}

func TestExport_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tile.jpg")

	err := NewExporter(90).Export(createTestImage(8, 8, red), path)
	var encodeErr *EncodeError
	require.True(t, errors.As(err, &encodeErr), "expected EncodeError, got %v", err)
	assert.Equal(t, path, encodeErr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_NilImage(t *testing.T) {
	err := NewExporter(90).Export(nil, filepath.Join(t.TempDir(), "tile.jpg"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
