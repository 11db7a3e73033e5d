package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/imgdec"
)

// uniformCall is one recorded push into the fake shader backend.
type uniformCall struct {
	Name  string
	Value interface{}
}

type fakeShader struct {
	calls []uniformCall
}

func (f *fakeShader) push(name string, value interface{}) {
	f.calls = append(f.calls, uniformCall{Name: name, Value: value})
}

func (f *fakeShader) SetMat4(name string, m mgl32.Mat4)   { f.push(name, m) }
func (f *fakeShader) SetVec4(name string, v mgl32.Vec4)   { f.push(name, v) }
func (f *fakeShader) SetVec3(name string, v mgl32.Vec3)   { f.push(name, v) }
func (f *fakeShader) SetVec2(name string, v mgl32.Vec2)   { f.push(name, v) }
func (f *fakeShader) SetFloat(name string, value float32) { f.push(name, value) }
func (f *fakeShader) SetInt(name string, value int32)     { f.push(name, value) }
func (f *fakeShader) SetBool(name string, value bool)     { f.push(name, value) }
func (f *fakeShader) SetSampler(name string, unit int32)  { f.push(name, unit) }

func (f *fakeShader) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Name
	}
	return out
}

func (f *fakeShader) last(name string) (interface{}, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Name == name {
			return f.calls[i].Value, true
		}
	}
	return nil, false
}

type boundUnit struct {
	Unit   int32
	Handle TextureHandle
}

type fakeTextureBackend struct {
	nextHandle TextureHandle
	uploads    int
	bound      []boundUnit
	deleted    [][]TextureHandle
	failUpload bool
}

func (f *fakeTextureBackend) Upload(pix []byte, width, height, channels int) (TextureHandle, error) {
	if f.failUpload {
		return 0, errors.New("upload refused")
	}
	f.uploads++
	f.nextHandle++
	return f.nextHandle, nil
}

func (f *fakeTextureBackend) BindUnit(unit int32, h TextureHandle) {
	f.bound = append(f.bound, boundUnit{Unit: unit, Handle: h})
}

func (f *fakeTextureBackend) Delete(handles []TextureHandle) {
	f.deleted = append(f.deleted, handles)
}

type fakeMeshes struct {
	loaded map[Shape]int
	draws  []Shape
}

func newFakeMeshes() *fakeMeshes {
	return &fakeMeshes{loaded: make(map[Shape]int)}
}

func (f *fakeMeshes) Load(shape Shape) error {
	f.loaded[shape]++
	return nil
}

func (f *fakeMeshes) Draw(shape Shape) error {
	f.draws = append(f.draws, shape)
	return nil
}

// fakeDecoder serves canned images by path.
func fakeDecoder(images map[string]*imgdec.Image) DecodeFunc {
	return func(path string) (*imgdec.Image, error) {
		img, ok := images[path]
		if !ok {
			return nil, errors.Errorf("no image at %q", path)
		}
		return img, nil
	}
}

func rgbaImage(channels int) *imgdec.Image {
	return &imgdec.Image{
		Pix:      make([]byte, 2*2*channels),
		Width:    2,
		Height:   2,
		Channels: channels,
	}
}
