package gldriver

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/config"
	"github.com/mpoletaev/glscene/scene"
)

// Textures implements scene.TextureBackend on GL texture objects.
type Textures struct{}

func NewTextures() *Textures {
	return &Textures{}
}

// Upload creates one 2D texture with repeat wrapping, linear min/mag
// filtering and generated mipmaps. channels selects RGB8 or RGBA8
// storage.
func (t *Textures) Upload(pix []byte, width, height, channels int) (scene.TextureHandle, error) {
	var internalFormat int32
	var format uint32
	switch channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, errors.Errorf("cannot upload image with %d channels", channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows are tightly packed regardless of channel count.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	if config.GetGenerateMipmaps() {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return scene.TextureHandle(id), nil
}

func (t *Textures) BindUnit(unit int32, h scene.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(h))
}

func (t *Textures) Delete(handles []scene.TextureHandle) {
	if len(handles) == 0 {
		return
	}
	ids := make([]uint32, len(handles))
	for i, h := range handles {
		ids[i] = uint32(h)
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
