package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// MaxLights is the number of light sources the scene shader supports.
const MaxLights = 4

// Light describes one point light source for the scene shader.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// LightRig holds the light sources configured for a scene. Like the
// other registries it is filled during setup and read during render.
type LightRig struct {
	lights []Light
}

func NewLightRig() *LightRig {
	return &LightRig{}
}

// Add appends a light source. Fails once MaxLights are configured.
func (r *LightRig) Add(l Light) error {
	if len(r.lights) >= MaxLights {
		return errors.Errorf("light limit of %d reached", MaxLights)
	}
	r.lights = append(r.lights, l)
	return nil
}

// Len returns the number of configured lights.
func (r *LightRig) Len() int {
	return len(r.lights)
}

// Lights returns a copy of the configured lights.
func (r *LightRig) Lights() []Light {
	out := make([]Light, len(r.lights))
	copy(out, r.lights)
	return out
}

// Apply uploads every configured light to the shader and enables the
// lighting path. With no lights configured the shader keeps its
// default unlit rendering.
func (r *LightRig) Apply(sb ShaderBackend) {
	if len(r.lights) == 0 {
		sb.SetBool(uniformUseLighting, false)
		return
	}
	sb.SetBool(uniformUseLighting, true)
	for i, l := range r.lights {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		sb.SetVec3(prefix+".position", l.Position)
		sb.SetVec3(prefix+".ambientColor", l.AmbientColor)
		sb.SetVec3(prefix+".diffuseColor", l.DiffuseColor)
		sb.SetVec3(prefix+".specularColor", l.SpecularColor)
		sb.SetFloat(prefix+".focalStrength", l.FocalStrength)
		sb.SetFloat(prefix+".specularIntensity", l.SpecularIntensity)
	}
}
