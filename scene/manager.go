package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/scenefile"
	"github.com/mpoletaev/glscene/status"
	"github.com/mpoletaev/glscene/utils"
)

// Manager owns the resource registries for one rendering session and
// drives the per-draw state protocol against the backends. All methods
// must be called from the goroutine that owns the graphics context.
type Manager struct {
	shader ShaderBackend
	meshes Meshes

	textures  *TextureRegistry
	materials *MaterialRegistry
	lights    *LightRig
	bridge    *StateBridge
}

// NewManager wires a manager to its backends. decode may be nil to use
// the default image decoder.
func NewManager(shader ShaderBackend, textureBackend TextureBackend, meshes Meshes, decode DecodeFunc) *Manager {
	m := &Manager{
		shader:    shader,
		meshes:    meshes,
		textures:  NewTextureRegistry(textureBackend, decode),
		materials: NewMaterialRegistry(),
		lights:    NewLightRig(),
	}
	m.bridge = NewStateBridge(shader, m.textures, m.materials)
	return m
}

func (m *Manager) Textures() *TextureRegistry   { return m.textures }
func (m *Manager) Materials() *MaterialRegistry { return m.materials }
func (m *Manager) Lights() *LightRig            { return m.lights }
func (m *Manager) Bridge() *StateBridge         { return m.bridge }

// SetView uploads the view matrix and the world-space camera position.
func (m *Manager) SetView(view mgl32.Mat4, position mgl32.Vec3) {
	m.shader.SetMat4(uniformView, view)
	m.shader.SetVec3(uniformViewPosition, position)
}

// SetProjection uploads the projection matrix.
func (m *Manager) SetProjection(projection mgl32.Mat4) {
	m.shader.SetMat4(uniformProjection, projection)
}

// PrepareScene loads and binds the scene's textures, defines its
// materials, applies its lights and tessellates every mesh family its
// objects draw. Call once before the first RenderScene.
//
// A texture that fails to load is skipped; its objects will draw
// untextured. Unknown shapes and excess lights fail preparation.
func (m *Manager) PrepareScene(doc *scenefile.Scene) error {
	if len(doc.Textures) > MaxTextures {
		return errors.Errorf("scene defines %d textures, limit is %d",
			len(doc.Textures), MaxTextures)
	}

	for i, t := range doc.Textures {
		status.Progress(float32(i)/float32(len(doc.Textures)), "loading texture %q", t.Tag)
		m.textures.Load(t.Path, t.Tag)
	}
	m.textures.BindAll()

	for _, mat := range doc.Materials {
		m.materials.Define(Material{
			Tag:             mat.Tag,
			AmbientColor:    mgl32.Vec3(mat.AmbientColor),
			AmbientStrength: mat.AmbientStrength,
			DiffuseColor:    mgl32.Vec3(mat.DiffuseColor),
			SpecularColor:   mgl32.Vec3(mat.SpecularColor),
			Shininess:       mat.Shininess,
		})
	}

	for i, l := range doc.Lights {
		if err := m.lights.Add(Light{
			Position:          mgl32.Vec3(l.Position),
			AmbientColor:      mgl32.Vec3(l.AmbientColor),
			DiffuseColor:      mgl32.Vec3(l.DiffuseColor),
			SpecularColor:     mgl32.Vec3(l.SpecularColor),
			FocalStrength:     l.FocalStrength,
			SpecularIntensity: l.SpecularIntensity,
		}); err != nil {
			return errors.Wrapf(err, "light %d", i)
		}
	}
	m.lights.Apply(m.shader)

	for _, o := range doc.Objects {
		shape, err := ParseShape(o.Shape)
		if err != nil {
			return errors.Wrapf(err, "object %q", o.Name)
		}
		if err := m.meshes.Load(shape); err != nil {
			return errors.Wrapf(err, "object %q", o.Name)
		}
	}

	status.Info("scene prepared: %d textures, %d materials, %d lights, %d objects",
		m.textures.Used(), m.materials.Len(), m.lights.Len(), len(doc.Objects))
	log.Printf("[scene] Prepared: %d textures, %d materials, %d lights, %d objects",
		m.textures.Used(), m.materials.Len(), m.lights.Len(), len(doc.Objects))
	return nil
}

// RenderScene draws every object of the scene in document order,
// submitting one complete draw request per object.
func (m *Manager) RenderScene(doc *scenefile.Scene) error {
	for _, o := range doc.Objects {
		if err := m.renderObject(&o); err != nil {
			return errors.Wrapf(err, "object %q", o.Name)
		}
	}
	return nil
}

func (m *Manager) renderObject(o *scenefile.Object) error {
	shape, err := ParseShape(o.Shape)
	if err != nil {
		return err
	}

	req := NewDraw(shape).WithTransform(
		mgl32.Vec3(o.Scale),
		o.RotationDegrees[0], o.RotationDegrees[1], o.RotationDegrees[2],
		mgl32.Vec3(o.Position),
	)

	if o.Color != nil {
		req.WithColor(utils.ColorFloat(*o.Color))
	} else {
		req.WithTexture(o.Texture)
	}
	if o.Material != "" {
		req.WithMaterial(o.Material)
	}
	if o.UVScale != nil {
		req.WithUVScale(o.UVScale[0], o.UVScale[1])
	}

	return req.Submit(m.bridge, m.meshes)
}

// Teardown releases the texture resources of the session. Safe to call
// more than once.
func (m *Manager) Teardown() {
	m.textures.Teardown()
}
