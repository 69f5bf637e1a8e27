package tile

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/SplashTile/util"
	"github.com/dixieflatline76/SplashTile/util/log"
	"github.com/muesli/smartcrop"
	"golang.org/x/sync/errgroup"
)

// CropMode selects where the crop window is placed inside a resized tile.
type CropMode int

const (
	// CropCenter trims DX/2 (DY/2) from the leading edge and the rest from the trailing edge.
	CropCenter CropMode = iota
	// CropSmart lets smartcrop place the window over the most interesting region.
	CropSmart
)

// String returns the config name of the crop mode.
func (m CropMode) String() string {
	switch m {
	case CropCenter:
		return "center"
	case CropSmart:
		return "smart"
	default:
		return fmt.Sprintf("CropMode(%d)", int(m))
	}
}

// ParseCropMode parses "center" or "smart".
func ParseCropMode(s string) (CropMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return CropCenter, nil
	case "smart":
		return CropSmart, nil
	default:
		return CropCenter, fmt.Errorf("unknown crop mode %q", s)
	}
}

// Compositor paints source images into a layout's grid.
type Compositor struct {
	Filter   imaging.ResampleFilter
	Crop     CropMode
	Workers  int                   // <= 0 means runtime.NumCPU()
	Progress func(done, total int) // Optional, called as each source is prepared
}

// NewCompositor creates a Compositor using Lanczos resampling and center crops.
func NewCompositor() *Compositor {
	return &Compositor{
		Filter:  imaging.Lanczos,
		Crop:    CropCenter,
		Workers: runtime.NumCPU(),
	}
}

// Composite resizes and crops every source to the layout's tile and paints them
// row by row, wrapping around the sources when there are fewer sources than cells.
// An empty path list returns a nil canvas without error.
func (c *Compositor) Composite(ctx context.Context, paths []string, layout Layout) (*image.NRGBA, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	tile := layout.CroppedTile()
	if layout.Cells() <= 0 || !tile.Valid() || !layout.TileResolution.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, layout)
	}

	tiles, err := c.prepareAll(ctx, paths, layout)
	if err != nil {
		return nil, err
	}

	size := layout.CanvasSize()
	canvas := imaging.New(size.Width, size.Height, color.NRGBA{A: 0xff})
	paint(canvas, tiles, layout)
	return canvas, nil
}

// prepareAll runs prepare for every path on a bounded worker pool. Each worker
// owns one slot of the result so no locking is needed. The first failure cancels
// the remaining work.
func (c *Compositor) prepareAll(ctx context.Context, paths []string, layout Layout) ([]*image.NRGBA, error) {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	progress := util.NewProgress(len(paths), c.Progress)
	tiles := make([]*image.NRGBA, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := c.prepare(path, layout)
			if err != nil {
				return err
			}
			tiles[i] = img
			progress.Step()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("Compositor: prepared %d/%d sources at %s", progress.Done(), progress.Total(), layout.CroppedTile())
	return tiles, nil
}

// prepare decodes one source, resizes it to the layout's tile resolution and crops it.
// EXIF orientation is not applied: the pixels keep the stored size that
// NativeResolution reports to the solver.
func (c *Compositor) prepare(path string, layout Layout) (*image.NRGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	res := layout.TileResolution
	resized := imaging.Resize(src, res.Width, res.Height, c.Filter)
	return imaging.Crop(resized, c.cropWindow(resized, layout)), nil
}

// cropWindow returns the rectangle of the cropped tile inside a resized source.
func (c *Compositor) cropWindow(img image.Image, layout Layout) image.Rectangle {
	tile := layout.CroppedTile()
	adjust := layout.CropAdjust
	center := image.Rect(adjust.DX/2, adjust.DY/2, adjust.DX/2+tile.Width, adjust.DY/2+tile.Height)

	if c.Crop != CropSmart || (adjust.DX == 0 && adjust.DY == 0) {
		return center
	}

	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: c.Filter})
	best, err := analyzer.FindBestCrop(img, tile.Width, tile.Height)
	if err != nil {
		log.Debugf("Compositor: smart crop failed, using center: %v", err)
		return center
	}
	return clampWindow(best.Min, tile, img.Bounds())
}

// clampWindow places a tile-sized window at origin, shifted to stay inside bounds.
func clampWindow(origin image.Point, tile Resolution, bounds image.Rectangle) image.Rectangle {
	x := min(max(origin.X, bounds.Min.X), bounds.Max.X-tile.Width)
	y := min(max(origin.Y, bounds.Min.Y), bounds.Max.Y-tile.Height)
	return image.Rect(x, y, x+tile.Width, y+tile.Height)
}

// paint copies tiles into canvas in row-major order. Cell n holds tiles[n % len(tiles)].
func paint(canvas draw.Image, tiles []*image.NRGBA, layout Layout) {
	tile := layout.CroppedTile()
	count := 0
	for i := 0; i < layout.Grid.Rows; i++ {
		for j := 0; j < layout.Grid.Columns; j++ {
			src := tiles[count%len(tiles)]
			at := image.Pt(j*tile.Width, i*tile.Height)
			draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(image.Pt(tile.Width, tile.Height))}, src, src.Bounds().Min, draw.Src)
			count++
		}
	}
}

// resizer implements the smartcrop.Resizer interface on top of imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
