package tile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePair(t *testing.T) {
	merged := MergePair(createTestImage(10, 10, red), createTestImage(20, 15, blue))

	assert.Equal(t, 30, merged.Bounds().Dx())
	assert.Equal(t, 15, merged.Bounds().Dy())
	assertColor(t, red, merged.At(5, 5), 0)
	assertColor(t, blue, merged.At(25, 12), 0)
}

func TestBuilderMerge(t *testing.T) {
	dir := t.TempDir()
	left := writePNG(t, dir, "left.png", createTestImage(40, 20, red))
	right := writePNG(t, dir, "right.png", createTestImage(30, 20, green))

	out, err := NewBuilder(Options{}).Merge(left, right, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, MergedName+".jpg"), out)
	assert.Equal(t, Resolution{70, 20}, decodedSize(t, out))
}

func TestBuilderMerge_MissingInput(t *testing.T) {
	dir := t.TempDir()
	left := writePNG(t, dir, "left.png", createTestImage(4, 4, red))

	_, err := NewBuilder(Options{}).Merge(left, filepath.Join(dir, "nope.png"), "")
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
