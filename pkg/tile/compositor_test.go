package tile

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositor_EmptyPathsIsNoop(t *testing.T) {
	canvas, err := NewCompositor().Composite(context.Background(), nil, Layout{})
	assert.NoError(t, err)
	assert.Nil(t, canvas)
}

func TestCompositor_InvalidLayout(t *testing.T) {
	path := writePNG(t, t.TempDir(), "a.png", createTestImage(8, 8, red))

	_, err := NewCompositor().Composite(context.Background(), []string{path}, Layout{
		Grid:           Grid{Columns: 0, Rows: 2},
		TileResolution: Resolution{8, 8},
	})
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewCompositor().Composite(context.Background(), []string{path}, Layout{
		Grid:           Grid{Columns: 1, Rows: 1},
		TileResolution: Resolution{8, 8},
		CropAdjust:     CropAdjust{DX: 8},
	})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCompositor_ExactCanvasAndWraparound(t *testing.T) {
	dir := t.TempDir()
	colors := []color.NRGBA{red, green}
	paths := []string{
		writePNG(t, dir, "0.png", createTestImage(80, 40, red)),
		writePNG(t, dir, "1.png", createTestImage(80, 40, green)),
	}
	layout := Layout{
		Grid:           Grid{Columns: 3, Rows: 2},
		TileResolution: Resolution{40, 20},
		CropAdjust:     CropAdjust{DX: 10},
	}

	canvas, err := NewCompositor().Composite(context.Background(), paths, layout)
	require.NoError(t, err)
	require.NotNil(t, canvas)

	assert.Equal(t, 90, canvas.Bounds().Dx())
	assert.Equal(t, 40, canvas.Bounds().Dy())
	assert.Equal(t, layout.CanvasSize(), Resolution{canvas.Bounds().Dx(), canvas.Bounds().Dy()})

	for cell := 0; cell < layout.Cells(); cell++ {
		row, col := cell/layout.Grid.Columns, cell%layout.Grid.Columns
		center := image.Pt(col*30+15, row*20+10)
		assertColor(t, colors[cell%len(paths)], canvas.At(center.X, center.Y), 2, "cell", cell)
	}
}

func TestCompositor_CenterCropTrimsBothEdges(t *testing.T) {
	// Green 5px borders left and right, red in between. DX=10 trims both borders.
	src := createTestImage(40, 20, red)
	for y := 0; y < 20; y++ {
		for x := 0; x < 5; x++ {
			src.Set(x, y, green)
			src.Set(39-x, y, green)
		}
	}
	path := writePNG(t, t.TempDir(), "border.png", src)
	layout := Layout{
		Grid:           Grid{Columns: 2, Rows: 1},
		TileResolution: Resolution{40, 20},
		CropAdjust:     CropAdjust{DX: 10},
	}

	canvas, err := NewCompositor().Composite(context.Background(), []string{path}, layout)
	require.NoError(t, err)

	assert.Equal(t, 60, canvas.Bounds().Dx())
	for _, x := range []int{0, 29, 30, 59} {
		assertColor(t, red, canvas.At(x, 10), 2, "column", x)
	}
}

func TestCompositor_OddCropDropsRemainderAtTrailingEdge(t *testing.T) {
	layout := Layout{TileResolution: Resolution{40, 20}, CropAdjust: CropAdjust{DY: 5}}
	window := NewCompositor().cropWindow(createTestImage(40, 20, red), layout)
	assert.Equal(t, image.Rect(0, 2, 40, 17), window)
}

func TestCompositor_SmartCropKeepsTileSize(t *testing.T) {
	src := createTestImage(60, 60, blue)
	for y := 40; y < 60; y++ {
		for x := 0; x < 60; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 0, A: 255})
		}
	}
	path := writePNG(t, t.TempDir(), "smart.png", src)
	layout := Layout{
		Grid:           Grid{Columns: 2, Rows: 3},
		TileResolution: Resolution{60, 60},
		CropAdjust:     CropAdjust{DY: 20},
	}

	c := NewCompositor()
	c.Crop = CropSmart
	canvas, err := c.Composite(context.Background(), []string{path}, layout)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 120), canvas.Bounds())
}

func TestCompositor_DecodeFailureAbortsBuild(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", createTestImage(20, 10, red))
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))

	layout := Layout{Grid: Grid{2, 2}, TileResolution: Resolution{20, 10}}
	canvas, err := NewCompositor().Composite(context.Background(), []string{good, bad}, layout)
	assert.Nil(t, canvas)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
	assert.Equal(t, bad, decodeErr.Path)
}

func TestCompositor_ReportsProgress(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		paths = append(paths, writePNG(t, dir, name, createTestImage(10, 10, blue)))
	}

	done := make(chan int, len(paths))
	c := NewCompositor()
	c.Workers = 1
	c.Progress = func(d, total int) {
		assert.Equal(t, len(paths), total)
		done <- d
	}
	_, err := c.Composite(context.Background(), paths, Layout{Grid: Grid{2, 2}, TileResolution: Resolution{10, 10}})
	require.NoError(t, err)
	close(done)

	var steps []int
	for d := range done {
		steps = append(steps, d)
	}
	assert.Equal(t, []int{1, 2, 3}, steps)
}

func TestParseCropMode(t *testing.T) {
	mode, err := ParseCropMode("Smart")
	require.NoError(t, err)
	assert.Equal(t, CropSmart, mode)

	mode, err = ParseCropMode("")
	require.NoError(t, err)
	assert.Equal(t, CropCenter, mode)
	assert.Equal(t, "center", mode.String())

	_, err = ParseCropMode("edge")
	assert.Error(t, err)
}
