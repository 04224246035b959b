package viz

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// Encode writes the image to w in the named format, "png" or "bmp".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
