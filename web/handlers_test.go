package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/imgdec"
	"github.com/mpoletaev/glscene/scene"
	"github.com/mpoletaev/glscene/scenefile"
)

type nullShader struct{}

func (nullShader) SetMat4(string, mgl32.Mat4) {}
func (nullShader) SetVec4(string, mgl32.Vec4) {}
func (nullShader) SetVec3(string, mgl32.Vec3) {}
func (nullShader) SetVec2(string, mgl32.Vec2) {}
func (nullShader) SetFloat(string, float32)   {}
func (nullShader) SetInt(string, int32)       {}
func (nullShader) SetBool(string, bool)       {}
func (nullShader) SetSampler(string, int32)   {}

type nullTextures struct{ next scene.TextureHandle }

func (n *nullTextures) Upload([]byte, int, int, int) (scene.TextureHandle, error) {
	n.next++
	return n.next, nil
}
func (n *nullTextures) BindUnit(int32, scene.TextureHandle) {}
func (n *nullTextures) Delete([]scene.TextureHandle)        {}

type nullMeshes struct{}

func (nullMeshes) Load(scene.Shape) error { return nil }
func (nullMeshes) Draw(scene.Shape) error { return nil }

func testDecoder(path string) (*imgdec.Image, error) {
	if path != "flame.png" {
		return nil, errors.Errorf("no image at %q", path)
	}
	return &imgdec.Image{Pix: make([]byte, 16), Width: 2, Height: 2, Channels: 4}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	doc, err := scenefile.Parse([]byte(`
textures:
  - {path: flame.png, tag: flame}
materials:
  - {tag: wood, shininess: 0.3}
lights:
  - {position: [1, 2, 3]}
objects:
  - {name: table, shape: plane, texture: flame}
`))
	if err != nil {
		t.Fatal(err)
	}

	m := scene.NewManager(nullShader{}, &nullTextures{}, nullMeshes{}, testDecoder)
	if err := m.PrepareScene(doc); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(NewRouter(m, doc))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("GET %s: decode: %v", url, err)
	}
}

func TestHandlerTextures(t *testing.T) {
	srv := newTestServer(t)

	var out []struct {
		Slot   int
		Tag    string
		Handle uint32
	}
	getJSON(t, srv.URL+"/json/textures", &out)

	if len(out) != 1 || out[0].Tag != "flame" || out[0].Slot != 0 {
		t.Errorf("textures = %+v", out)
	}
}

func TestHandlerMaterials(t *testing.T) {
	srv := newTestServer(t)

	var out []struct {
		Tag       string
		Shininess float32
	}
	getJSON(t, srv.URL+"/json/materials", &out)

	if len(out) != 1 || out[0].Tag != "wood" || out[0].Shininess != 0.3 {
		t.Errorf("materials = %+v", out)
	}
}

func TestHandlerLights(t *testing.T) {
	srv := newTestServer(t)

	var out []struct {
		Position [3]float32
	}
	getJSON(t, srv.URL+"/json/lights", &out)

	if len(out) != 1 || out[0].Position != [3]float32{1, 2, 3} {
		t.Errorf("lights = %+v", out)
	}
}

func TestHandlerScene(t *testing.T) {
	srv := newTestServer(t)

	var out scenefile.Scene
	getJSON(t, srv.URL+"/json/scene", &out)

	if len(out.Objects) != 1 || out.Objects[0].Name != "table" {
		t.Errorf("scene = %+v", out)
	}
}
