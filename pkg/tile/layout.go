package tile

import "fmt"

// Grid is the number of tiles across and down.
type Grid struct {
	Columns, Rows int
}

// Cells returns Columns * Rows.
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

// CropAdjust is the number of pixels trimmed from each resized tile.
// At most one axis is non-zero: the bias axis fits the container exactly and
// the other axis absorbs the overfit.
type CropAdjust struct {
	DX, DY int
}

// Layout describes how to arrange copies of one native resolution to cover a container.
// A Layout is computed once per build and never modified afterwards.
type Layout struct {
	Grid           Grid
	TileResolution Resolution // Size each source is resized to before cropping
	CropAdjust     CropAdjust
}

// Cells returns the number of grid cells.
func (l Layout) Cells() int {
	return l.Grid.Cells()
}

// CroppedTile returns the size of a single tile after cropping.
func (l Layout) CroppedTile() Resolution {
	return Resolution{
		Width:  l.TileResolution.Width - l.CropAdjust.DX,
		Height: l.TileResolution.Height - l.CropAdjust.DY,
	}
}

// CanvasSize returns the exact pixel size of the composite.
func (l Layout) CanvasSize() Resolution {
	tile := l.CroppedTile()
	return Resolution{
		Width:  l.Grid.Columns * tile.Width,
		Height: l.Grid.Rows * tile.Height,
	}
}

// String returns a short human readable description of the layout.
func (l Layout) String() string {
	return fmt.Sprintf("%dx%d grid of %s tiles (crop %d,%d) -> %s",
		l.Grid.Columns, l.Grid.Rows, l.TileResolution, l.CropAdjust.DX, l.CropAdjust.DY, l.CanvasSize())
}
