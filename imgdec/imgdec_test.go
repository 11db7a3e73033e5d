package imgdec

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpoletaev/glscene/config"
)

func writePNG(t *testing.T, src image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	path := writePNG(t, src)

	img, err := Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Errorf("size = %dx%d, want 2x2", img.Width, img.Height)
	}
	if img.Channels != 4 {
		t.Errorf("channels = %d, want 4 for translucent image", img.Channels)
	}
	if len(img.Pix) != 2*2*4 {
		t.Errorf("pix length = %d, want %d", len(img.Pix), 2*2*4)
	}
}

func TestDecodeOpaqueIsRGB(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	path := writePNG(t, src)

	img, err := Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Channels != 3 {
		t.Errorf("channels = %d, want 3 for opaque image", img.Channels)
	}
	if len(img.Pix) != 2*2*3 {
		t.Errorf("pix length = %d, want %d", len(img.Pix), 2*2*3)
	}
}

func TestDecodeFlipsRows(t *testing.T) {
	// top row red, bottom row blue
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	path := writePNG(t, src)

	defer config.SetFlipTexturesOnLoad(config.GetFlipTexturesOnLoad())

	config.SetFlipTexturesOnLoad(true)
	img, err := Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// flipped: first stored row is the source bottom row (blue)
	if img.Pix[2] != 255 {
		t.Errorf("flipped first row = %v, want blue first", img.Pix[:3])
	}

	config.SetFlipTexturesOnLoad(false)
	img, err = Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Pix[0] != 255 {
		t.Errorf("unflipped first row = %v, want red first", img.Pix[:3])
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("missing file decoded")
	}
}

func TestDecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(path); err == nil {
		t.Error("garbage decoded")
	}
}
