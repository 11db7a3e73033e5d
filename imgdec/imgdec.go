// Package imgdec decodes image files into tightly packed pixel rows
// ready for texture upload.
package imgdec

import (
	"image"
	"os"

	"github.com/pkg/errors"

	// Image formats usable as scene textures.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mpoletaev/glscene/config"
)

// Image is a decoded texture image. Pix holds Height rows of Width
// pixels, Channels bytes each, with no padding between rows. Channels
// is 3 for fully opaque sources and 4 when an alpha channel is
// present.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decode parses the image file at path. Rows are flipped vertically
// when config.GetFlipTexturesOnLoad is set, matching the bottom-left
// texture coordinate origin of GL.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image")
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image")
	}

	return FromImage(src), nil
}

// FromImage converts an already decoded image into packed pixel rows.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	channels := 4
	if isOpaque(src) {
		channels = 3
	}

	img := &Image{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}

	flip := config.GetFlipTexturesOnLoad()

	for y := 0; y < height; y++ {
		dstY := y
		if flip {
			dstY = height - 1 - y
		}
		row := img.Pix[dstY*width*channels:]
		for x := 0; x < width; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			p := row[x*channels:]
			p[0] = byte(r >> 8)
			p[1] = byte(g >> 8)
			p[2] = byte(b >> 8)
			if channels == 4 {
				p[3] = byte(a >> 8)
			}
		}
	}

	return img
}

func isOpaque(src image.Image) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
