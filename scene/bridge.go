package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names of the scene shader contract.
const (
	uniformModel        = "model"
	uniformView         = "view"
	uniformProjection   = "projection"
	uniformViewPosition = "viewPosition"
	uniformColor        = "objectColor"
	uniformTexture      = "objectTexture"
	uniformUseTexture   = "bUseTexture"
	uniformUseLighting  = "bUseLighting"
	uniformUVScale      = "UVscale"
)

// StateBridge pushes per-draw state into the shader backend, resolving
// texture and material tags through the registries.
//
// Pushed values stay bound in the backend until overwritten; nothing is
// reset between draws. Callers that bypass DrawRequest must re-push
// every field for every object, in the order transform, color or
// texture, material, UV scale, or state from the previous draw applies.
type StateBridge struct {
	shader    ShaderBackend
	textures  *TextureRegistry
	materials *MaterialRegistry
}

func NewStateBridge(shader ShaderBackend, textures *TextureRegistry, materials *MaterialRegistry) *StateBridge {
	return &StateBridge{
		shader:    shader,
		textures:  textures,
		materials: materials,
	}
}

// SetTransformations composes a model matrix from the passed scale,
// rotation and position values and uploads it.
func (b *StateBridge) SetTransformations(scale mgl32.Vec3,
	xRotationDegrees, yRotationDegrees, zRotationDegrees float32,
	position mgl32.Vec3) {

	b.SetModelMatrix(ComposeTransform(scale,
		xRotationDegrees, yRotationDegrees, zRotationDegrees, position))
}

// SetModelMatrix uploads an already composed model matrix.
func (b *StateBridge) SetModelMatrix(m mgl32.Mat4) {
	b.shader.SetMat4(uniformModel, m)
}

// SetShaderColor uploads a flat RGBA color and disables texturing for
// the next draw.
func (b *StateBridge) SetShaderColor(r, g, bl, a float32) {
	b.shader.SetBool(uniformUseTexture, false)
	b.shader.SetVec4(uniformColor, mgl32.Vec4{r, g, bl, a})
}

// SetShaderTexture enables texturing and selects the texture unit
// registered under tag. An unknown tag selects unit -1, which samples
// nothing; missing textures degrade silently instead of failing.
func (b *StateBridge) SetShaderTexture(tag string) {
	b.shader.SetBool(uniformUseTexture, true)
	b.shader.SetSampler(uniformTexture, b.textures.FindSlot(tag))
}

// SetShaderMaterial uploads the surface parameters of the material
// registered under tag. An unknown tag leaves the previously uploaded
// material untouched.
func (b *StateBridge) SetShaderMaterial(tag string) {
	m, ok := b.materials.Find(tag)
	if !ok {
		return
	}
	b.shader.SetVec3("material.ambientColor", m.AmbientColor)
	b.shader.SetFloat("material.ambientStrength", m.AmbientStrength)
	b.shader.SetVec3("material.diffuseColor", m.DiffuseColor)
	b.shader.SetVec3("material.specularColor", m.SpecularColor)
	b.shader.SetFloat("material.shininess", m.Shininess)
}

// SetTextureUVScale uploads the texture coordinate scale applied at
// draw time.
func (b *StateBridge) SetTextureUVScale(u, v float32) {
	b.shader.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}
