package tile

import "math"

// epsilon absorbs float noise so an exact integral fit (e.g. 3840/1920) is not
// pushed up to the next integer by ceil.
const epsilon = 1e-9

func ceil(v float64) float64 {
	return math.Ceil(v - epsilon)
}

// FitWidth computes the width-biased candidate layout for looseness c.
//
// The columns are chosen so that they span the container width exactly; the tile
// height follows from the native aspect ratio, and the rows overshoot the container
// height. The overshoot is spread across the rows as a per-tile DY crop.
func FitWidth(native, container Resolution, c int) Layout {
	iw, ih := float64(native.Width), float64(native.Height)
	cw, ch := float64(container.Width), float64(container.Height)

	columns := ceil(cw/iw) + float64(c)
	tileW := cw / columns
	tileH := tileW * ih / iw

	fitY := ch / tileH
	rows := ceil(fitY)
	excess := rows*tileH - ch // (ceil(fitY) - fitY) * tileH
	dy := excess / rows

	return Layout{
		Grid:           Grid{Columns: int(columns), Rows: int(rows)},
		TileResolution: Resolution{Width: int(math.Round(tileW)), Height: int(math.Round(tileH))},
		CropAdjust:     CropAdjust{DX: 0, DY: int(ceil(dy))},
	}
}

// FitHeight computes the height-biased candidate layout for looseness c.
// It mirrors FitWidth: rows span the container height exactly and the
// column overshoot becomes a per-tile DX crop.
func FitHeight(native, container Resolution, c int) Layout {
	iw, ih := float64(native.Width), float64(native.Height)
	cw, ch := float64(container.Width), float64(container.Height)

	rows := ceil(ch/ih) + float64(c)
	tileH := ch / rows
	tileW := tileH * iw / ih

	fitX := cw / tileW
	columns := ceil(fitX)
	excess := columns*tileW - cw
	dx := excess / columns

	return Layout{
		Grid:           Grid{Columns: int(columns), Rows: int(rows)},
		TileResolution: Resolution{Width: int(math.Round(tileW)), Height: int(math.Round(tileH))},
		CropAdjust:     CropAdjust{DX: int(ceil(dx)), DY: 0},
	}
}
