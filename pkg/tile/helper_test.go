package tile

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func createTestImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// assertColor checks c against want allowing a small per channel difference
// for resampling and JPEG round trips.
func assertColor(t *testing.T, want color.NRGBA, got color.Color, tolerance int, msgAndArgs ...interface{}) {
	t.Helper()
	g := color.NRGBAModel.Convert(got).(color.NRGBA)
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(want.R, g.R) > tolerance || diff(want.G, g.G) > tolerance || diff(want.B, g.B) > tolerance {
		t.Errorf("expected %v, got %v %v", want, g, msgAndArgs)
	}
}

func decodedSize(t *testing.T, path string) Resolution {
	t.Helper()
	res, err := NativeResolution(path)
	require.NoError(t, err)
	return res
}

// writeOrientedJPEG writes img as a JPEG carrying an EXIF APP1 segment with the
// given orientation tag, inserted right after the SOI marker.
func writeOrientedJPEG(t *testing.T, dir, name string, img image.Image, orientation byte) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	data := buf.Bytes()

	app1 := []byte{
		0xff, 0xe1, 0x00, 0x22, // APP1, length 34
		'E', 'x', 'i', 'f', 0, 0,
		'I', 'I', 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00, // little endian TIFF header, IFD at 8
		0x01, 0x00, // one entry
		0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, orientation, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	out := append([]byte{}, data[:2]...)
	out = append(out, app1...)
	out = append(out, data[2:]...)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, out, 0o644))
	return path
}

// splitImage is red on the left half and blue on the right half.
func splitImage(width, height int) *image.NRGBA {
	img := createTestImage(width, height, red)
	draw.Draw(img, image.Rect(width/2, 0, width, height), &image.Uniform{blue}, image.Point{}, draw.Src)
	return img
}
