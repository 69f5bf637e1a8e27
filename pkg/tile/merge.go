package tile

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// MergedName is the file name Merge uses when no output path is given.
const MergedName = "merged"

// MergePair places right next to left. The canvas is as tall as the taller image;
// the shorter one is top aligned over black.
func MergePair(left, right image.Image) *image.NRGBA {
	lb, rb := left.Bounds(), right.Bounds()
	canvas := imaging.New(lb.Dx()+rb.Dx(), max(lb.Dy(), rb.Dy()), color.NRGBA{A: 0xff})

	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Src)
	return canvas
}

// Merge joins two image files side by side, for spanning tiles built for two
// monitors. An empty outPath writes "merged.jpg" next to the left image.
func (b *Builder) Merge(leftPath, rightPath, outPath string) (string, error) {
	left, err := imaging.Open(leftPath)
	if err != nil {
		return "", &DecodeError{Path: leftPath, Err: err}
	}
	right, err := imaging.Open(rightPath)
	if err != nil {
		return "", &DecodeError{Path: rightPath, Err: err}
	}

	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(leftPath), MergedName+".jpg")
	}
	if err := b.Exporter.Export(MergePair(left, right), outPath); err != nil {
		return "", fmt.Errorf("merging %s and %s: %w", leftPath, rightPath, err)
	}
	return outPath, nil
}
