package render

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG encodes an image to PNG bytes for Tk photo construction. Errors
// are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
