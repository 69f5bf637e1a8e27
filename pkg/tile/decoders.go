package tile

// Decoders registered with image.Decode and image.DecodeConfig. imaging already
// pulls in bmp and tiff; webp is only available through this import.
import (
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)
