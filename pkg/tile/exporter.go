package tile

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// Exporter writes composites as JPEG files.
type Exporter struct {
	Quality int // 1-100
}

// NewExporter creates an Exporter. Out of range qualities fall back to DefaultQuality.
func NewExporter(quality int) *Exporter {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Exporter{Quality: quality}
}

// OutputPath returns "<dir of first>/<name>.jpg".
func OutputPath(first, name string) string {
	return filepath.Join(filepath.Dir(first), name+".jpg")
}

// Export encodes img to path. The image is written to a temporary file in the same
// directory and renamed into place, so a failed export never leaves a partial file.
func (e *Exporter) Export(img image.Image, path string) error {
	if img == nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("%w: nil image", ErrInvalidInput)}
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+uuid.New().String()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(e.Quality)); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
