// Package scene manages the rendering resources of one session - the
// texture and material registries, the light rig - and composes the
// per-draw state pushed into the shading backend before each
// primitive draw.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// TextureHandle is an opaque id of a texture object owned by the
// graphics backend (a GL texture name for the gldriver).
type TextureHandle uint32

// ShaderBackend receives uniform pushes for the scene shader program.
// All writes are one-way: the scene layer never reads state back.
type ShaderBackend interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec4(name string, v mgl32.Vec4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec2(name string, v mgl32.Vec2)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	// SetSampler assigns a texture unit index to a sampler2D uniform.
	SetSampler(name string, unit int32)
}

// TextureBackend owns texture objects on the graphics device.
type TextureBackend interface {
	// Upload creates one texture object from tightly packed pixel rows.
	// channels must be 3 (RGB) or 4 (RGBA). Repeat wrapping, linear
	// filtering and mipmap generation are part of the contract.
	Upload(pix []byte, width, height, channels int) (TextureHandle, error)
	// BindUnit makes the texture current on the given texture unit.
	BindUnit(unit int32, h TextureHandle)
	Delete(handles []TextureHandle)
}

// Shape enumerates the primitive mesh families the geometry backend
// can tessellate and draw.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeCone
	ShapeTorus
	ShapeHalfTorus
	ShapePyramid3
	ShapePyramid4
	ShapePrism
	ShapeTaperedCylinder
)

var shapeNames = map[Shape]string{
	ShapePlane:           "plane",
	ShapeBox:             "box",
	ShapeCylinder:        "cylinder",
	ShapeCone:            "cone",
	ShapeTorus:           "torus",
	ShapeHalfTorus:       "halftorus",
	ShapePyramid3:        "pyramid3",
	ShapePyramid4:        "pyramid4",
	ShapePrism:           "prism",
	ShapeTaperedCylinder: "taperedcylinder",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "unknown"
}

func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown shape %q", name)
}

// Meshes is the geometry backend. Only one instance of a mesh family
// is kept in memory no matter how many objects draw it.
type Meshes interface {
	// Load tessellates the mesh for the shape if not done already.
	Load(shape Shape) error
	// Draw renders one instance of the shape using currently bound
	// shader and texture state.
	Draw(shape Shape) error
}
