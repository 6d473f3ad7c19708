package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// SampleScenePNG contains the raw PNG bytes of the bundled demo image used
// when no -image flag is given.
//
//go:embed sample_scene.png
var SampleScenePNG []byte

// SampleScene decodes the embedded PNG into an image.Image.
func SampleScene() (image.Image, error) {
	if len(SampleScenePNG) == 0 {
		return nil, fmt.Errorf("embedded sample_scene.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(SampleScenePNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
