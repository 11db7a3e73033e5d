package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a named bundle of surface response parameters consumed
// by the lighting model in the scene shader.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is an append-only list of materials defined during
// scene setup. Lookup is a first-match linear scan in insertion order:
// when two materials share a tag, the first one wins and the later one
// is unreachable. Not safe for concurrent use.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material. Tags are not checked for uniqueness.
func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns a copy of the first material defined under tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials, shadowed ones included.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}

// Materials returns a copy of the registry in insertion order.
func (r *MaterialRegistry) Materials() []Material {
	out := make([]Material, len(r.materials))
	copy(out, r.materials)
	return out
}
