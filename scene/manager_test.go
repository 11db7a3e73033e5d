package scene

import (
	"testing"

	"github.com/mpoletaev/glscene/imgdec"
	"github.com/mpoletaev/glscene/scenefile"
)

var testSceneYAML = []byte(`
textures:
  - {path: bad.png, tag: broken}
  - {path: flame.png, tag: flame}
materials:
  - {tag: wood, shininess: 0.3, diffuseColor: [0.3, 0.3, 0.3]}
lights:
  - {position: [-8, 6, 2], focalStrength: 35, specularIntensity: 5.5}
objects:
  - name: table
    shape: plane
    scale: [10, 1, 10]
    texture: flame
    uvScale: [4, 4]
    material: wood
  - name: wick
    shape: cylinder
    position: [0, 1, 0]
    color: [0.4, 0.25, 0.11, 1]
    material: wood
  - name: ghost
    shape: box
    texture: nonexistent
`)

func newTestManager(t *testing.T) (*Manager, *fakeShader, *fakeTextureBackend, *fakeMeshes) {
	t.Helper()
	sb := &fakeShader{}
	back := &fakeTextureBackend{}
	meshes := newFakeMeshes()
	decode := fakeDecoder(map[string]*imgdec.Image{
		"flame.png": rgbaImage(4),
		"gray.png":  rgbaImage(2),
	})
	return NewManager(sb, back, meshes, decode), sb, back, meshes
}

func TestManagerPrepareScene(t *testing.T) {
	doc, err := scenefile.Parse(testSceneYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	m, sb, back, meshes := newTestManager(t)
	if err := m.PrepareScene(doc); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	// bad.png is skipped, flame lands in slot 0
	if got := m.Textures().Used(); got != 1 {
		t.Errorf("textures used = %d, want 1", got)
	}
	if got := m.Textures().FindSlot("flame"); got != 0 {
		t.Errorf("FindSlot(flame) = %d, want 0", got)
	}
	if len(back.bound) != 1 {
		t.Errorf("bound %d texture units, want 1", len(back.bound))
	}

	if mat, ok := m.Materials().Find("wood"); !ok || mat.Shininess != 0.3 {
		t.Errorf("Find(wood) = %+v, %v", mat, ok)
	}
	if m.Lights().Len() != 1 {
		t.Errorf("lights = %d, want 1", m.Lights().Len())
	}
	if v, _ := sb.last("bUseLighting"); v != true {
		t.Errorf("bUseLighting = %v, want true", v)
	}

	for _, shape := range []Shape{ShapePlane, ShapeCylinder, ShapeBox} {
		if meshes.loaded[shape] == 0 {
			t.Errorf("shape %v not loaded", shape)
		}
	}
}

func TestManagerRenderScene(t *testing.T) {
	doc, err := scenefile.Parse(testSceneYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	m, sb, _, meshes := newTestManager(t)
	if err := m.PrepareScene(doc); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if err := m.RenderScene(doc); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []Shape{ShapePlane, ShapeCylinder, ShapeBox}
	if len(meshes.draws) != len(want) {
		t.Fatalf("draws = %v, want %v", meshes.draws, want)
	}
	for i, shape := range want {
		if meshes.draws[i] != shape {
			t.Errorf("draw %d = %v, want %v", i, meshes.draws[i], shape)
		}
	}

	// the ghost box references a missing texture and must still draw,
	// sampling the invalid unit
	if v, _ := sb.last("objectTexture"); v != int32(-1) {
		t.Errorf("last objectTexture = %v, want -1", v)
	}
}

func TestManagerPrepareSceneRejectsUnknownShape(t *testing.T) {
	doc, err := scenefile.Parse([]byte(`
objects:
  - {name: blob, shape: blob, color: [1, 1, 1, 1]}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, _, _, _ := newTestManager(t)
	if err := m.PrepareScene(doc); err == nil {
		t.Error("unknown shape accepted")
	}
}

func TestManagerPrepareSceneRejectsTooManyLights(t *testing.T) {
	yaml := []byte(`
lights:
  - {position: [0, 0, 0]}
  - {position: [1, 0, 0]}
  - {position: [2, 0, 0]}
  - {position: [3, 0, 0]}
  - {position: [4, 0, 0]}
`)
	doc, err := scenefile.Parse(yaml)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, _, _, _ := newTestManager(t)
	if err := m.PrepareScene(doc); err == nil {
		t.Error("fifth light accepted")
	}
}

func TestManagerTeardownIdempotent(t *testing.T) {
	doc, err := scenefile.Parse(testSceneYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, _, back, _ := newTestManager(t)
	if err := m.PrepareScene(doc); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	m.Teardown()
	m.Teardown()
	if len(back.deleted) != 1 {
		t.Errorf("deleted batches = %d, want 1", len(back.deleted))
	}
}
