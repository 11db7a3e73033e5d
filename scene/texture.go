package scene

import (
	"log"

	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/imgdec"
	"github.com/mpoletaev/glscene/status"
)

// MaxTextures is the number of texture units the scene shader can
// address; one registry slot maps to one unit.
const MaxTextures = 16

// TextureSlot associates a human readable tag with a backend texture.
// The slot index doubles as the texture unit number.
type TextureSlot struct {
	Tag    string
	Handle TextureHandle
}

// DecodeFunc parses an image file into tightly packed RGB or RGBA
// pixel rows.
type DecodeFunc func(path string) (*imgdec.Image, error)

// TextureRegistry owns up to MaxTextures tagged texture objects.
// Tags are looked up by first-match linear scan in registration order;
// a duplicate tag shadows every later one.
//
// The registry is populated once during scene preparation and is not
// safe for concurrent use.
type TextureRegistry struct {
	backend TextureBackend
	decode  DecodeFunc

	slots [MaxTextures]TextureSlot
	used  int
}

// NewTextureRegistry creates an empty registry. decode may be nil, in
// which case imgdec.Decode is used.
func NewTextureRegistry(backend TextureBackend, decode DecodeFunc) *TextureRegistry {
	if decode == nil {
		decode = imgdec.Decode
	}
	return &TextureRegistry{backend: backend, decode: decode}
}

// Load decodes an image file and registers it under tag in the next
// free slot. It reports failure (and leaves the registry and backend
// untouched) when the registry is full, the image cannot be decoded,
// or the image has a channel count other than 3 or 4.
func (r *TextureRegistry) Load(path string, tag string) bool {
	if err := r.load(path, tag); err != nil {
		log.Printf("[scene] Failed to load texture %q: %v", tag, err)
		status.Error("texture %q: %v", tag, err)
		return false
	}
	return true
}

func (r *TextureRegistry) load(path string, tag string) error {
	if r.used >= MaxTextures {
		return errors.Errorf("texture limit of %d reached", MaxTextures)
	}

	img, err := r.decode(path)
	if err != nil {
		return errors.Wrapf(err, "decode %q", path)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return errors.Errorf("unsupported channel count %d in %q", img.Channels, path)
	}

	handle, err := r.backend.Upload(img.Pix, img.Width, img.Height, img.Channels)
	if err != nil {
		return errors.Wrapf(err, "upload %q", path)
	}

	r.slots[r.used] = TextureSlot{Tag: tag, Handle: handle}
	r.used++

	log.Printf("[scene] Loaded texture %q from %q: %dx%d, %d channels, slot %d",
		tag, path, img.Width, img.Height, img.Channels, r.used-1)
	return nil
}

// BindAll binds every registered texture to the texture unit equal to
// its slot index, in registration order. Call once after loading and
// before any textured draw.
func (r *TextureRegistry) BindAll() {
	for i := 0; i < r.used; i++ {
		r.backend.BindUnit(int32(i), r.slots[i].Handle)
	}
}

// FindSlot returns the slot index of the first texture registered
// under tag, or -1 when no texture carries the tag.
func (r *TextureRegistry) FindSlot(tag string) int32 {
	for i := 0; i < r.used; i++ {
		if r.slots[i].Tag == tag {
			return int32(i)
		}
	}
	return -1
}

// FindHandle returns the backend handle of the first texture
// registered under tag.
func (r *TextureRegistry) FindHandle(tag string) (TextureHandle, bool) {
	for i := 0; i < r.used; i++ {
		if r.slots[i].Tag == tag {
			return r.slots[i].Handle, true
		}
	}
	return 0, false
}

// Used returns the number of occupied slots.
func (r *TextureRegistry) Used() int {
	return r.used
}

// Slots returns a copy of the occupied slots in registration order.
func (r *TextureRegistry) Slots() []TextureSlot {
	out := make([]TextureSlot, r.used)
	copy(out, r.slots[:r.used])
	return out
}

// Teardown releases every backend texture and empties the registry.
// Safe to call repeatedly and on an empty registry.
func (r *TextureRegistry) Teardown() {
	if r.used == 0 {
		return
	}
	handles := make([]TextureHandle, r.used)
	for i := 0; i < r.used; i++ {
		handles[i] = r.slots[i].Handle
		r.slots[i] = TextureSlot{}
	}
	r.used = 0
	r.backend.Delete(handles)
}
