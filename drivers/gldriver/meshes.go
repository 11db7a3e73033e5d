package gldriver

import (
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/scene"
)

const meshSegments = 32

// vertex layout: position(3) normal(3) uv(2)
const vertexStride = 8

type glMesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
}

// Meshes implements scene.Meshes. Each shape family is tessellated
// once on first Load and drawn from its own VAO.
type Meshes struct {
	meshes map[scene.Shape]*glMesh
}

func NewMeshes() *Meshes {
	return &Meshes{meshes: make(map[scene.Shape]*glMesh)}
}

func (m *Meshes) Load(shape scene.Shape) error {
	if _, ok := m.meshes[shape]; ok {
		return nil
	}

	b := &meshBuilder{}
	switch shape {
	case scene.ShapePlane:
		b.plane()
	case scene.ShapeBox:
		b.box()
	case scene.ShapeCylinder:
		b.lathe(0.5, 0.5, true)
	case scene.ShapeCone:
		b.lathe(0.5, 0, true)
	case scene.ShapeTaperedCylinder:
		b.lathe(0.5, 0.25, true)
	case scene.ShapeTorus:
		b.torus(2 * math.Pi)
	case scene.ShapeHalfTorus:
		b.torus(math.Pi)
	case scene.ShapePyramid3:
		b.pyramid(3)
	case scene.ShapePyramid4:
		b.pyramid(4)
	case scene.ShapePrism:
		b.prism()
	default:
		return errors.Errorf("no tessellator for shape %v", shape)
	}

	m.meshes[shape] = uploadMesh(b)
	return nil
}

func (m *Meshes) Draw(shape scene.Shape) error {
	mesh, ok := m.meshes[shape]
	if !ok {
		return errors.Errorf("shape %v was not loaded", shape)
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

// Delete releases every tessellated mesh.
func (m *Meshes) Delete() {
	for shape, mesh := range m.meshes {
		gl.DeleteVertexArrays(1, &mesh.vao)
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
		delete(m.meshes, shape)
	}
}

func uploadMesh(b *meshBuilder) *glMesh {
	mesh := &glMesh{indexCount: int32(len(b.indices))}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(b.verts)*int(unsafe.Sizeof(float32(0))), gl.Ptr(b.verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(b.indices)*int(unsafe.Sizeof(uint32(0))), gl.Ptr(b.indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * unsafe.Sizeof(float32(0)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*unsafe.Sizeof(float32(0)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*unsafe.Sizeof(float32(0)))

	gl.BindVertexArray(0)
	return mesh
}

type meshBuilder struct {
	verts   []float32
	indices []uint32
}

func (b *meshBuilder) vertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) uint32 {
	idx := uint32(len(b.verts) / vertexStride)
	b.verts = append(b.verts,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		uv.X(), uv.Y())
	return idx
}

func (b *meshBuilder) triangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// face adds a flat convex polygon, fan-triangulated, with one shared
// face normal. Points must be in counter-clockwise winding.
func (b *meshBuilder) face(points []mgl32.Vec3, uvs []mgl32.Vec2) {
	normal := points[1].Sub(points[0]).Cross(points[2].Sub(points[0])).Normalize()
	base := b.vertex(points[0], normal, uvs[0])
	for i := 1; i < len(points); i++ {
		b.vertex(points[i], normal, uvs[i])
	}
	for i := 1; i+1 < len(points); i++ {
		b.triangle(base, base+uint32(i), base+uint32(i+1))
	}
}

// plane is a unit quad in the XZ plane facing +Y.
func (b *meshBuilder) plane() {
	b.face(
		[]mgl32.Vec3{
			{-0.5, 0, 0.5}, {0.5, 0, 0.5}, {0.5, 0, -0.5}, {-0.5, 0, -0.5},
		},
		[]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	)
}

// box is a unit cube centered on the origin.
func (b *meshBuilder) box() {
	quadUV := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	faces := [][]mgl32.Vec3{
		{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},     // front
		{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, // back
		{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},     // right
		{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}, // left
		{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},     // top
		{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}, // bottom
	}
	for _, f := range faces {
		b.face(f, quadUV)
	}
}

// lathe revolves a straight side between bottomRadius at y=0 and
// topRadius at y=1 around the Y axis, with end caps. Covers cylinder,
// cone and tapered cylinder.
func (b *meshBuilder) lathe(bottomRadius, topRadius float32, caps bool) {
	// outward side normal, constant along the slant
	slant := mgl32.Vec2{1, bottomRadius - topRadius}.Normalize()

	for i := 0; i <= meshSegments; i++ {
		angle := 2 * math.Pi * float64(i) / meshSegments
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		u := float32(i) / meshSegments

		normal := mgl32.Vec3{cos * slant.X(), slant.Y(), sin * slant.X()}
		b.vertex(mgl32.Vec3{bottomRadius * cos, 0, bottomRadius * sin}, normal, mgl32.Vec2{u, 0})
		b.vertex(mgl32.Vec3{topRadius * cos, 1, topRadius * sin}, normal, mgl32.Vec2{u, 1})
	}
	for i := 0; i < meshSegments; i++ {
		base := uint32(i * 2)
		b.triangle(base, base+1, base+2)
		b.triangle(base+2, base+1, base+3)
	}

	if caps {
		b.disk(bottomRadius, 0, -1)
		if topRadius > 0 {
			b.disk(topRadius, 1, 1)
		}
	}
}

// disk adds an end cap at height y facing up (normalY=1) or down (-1).
func (b *meshBuilder) disk(radius, y, normalY float32) {
	normal := mgl32.Vec3{0, normalY, 0}
	center := b.vertex(mgl32.Vec3{0, y, 0}, normal, mgl32.Vec2{0.5, 0.5})
	for i := 0; i <= meshSegments; i++ {
		angle := 2 * math.Pi * float64(i) / meshSegments
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		b.vertex(mgl32.Vec3{radius * cos, y, radius * sin}, normal,
			mgl32.Vec2{0.5 + cos/2, 0.5 + sin/2})
	}
	for i := 0; i < meshSegments; i++ {
		if normalY > 0 {
			b.triangle(center, center+1+uint32(i)+1, center+1+uint32(i))
		} else {
			b.triangle(center, center+1+uint32(i), center+1+uint32(i)+1)
		}
	}
}

// torus sweeps a ring of minor radius 0.25 around the Z axis at major
// radius 0.5, covering sweep radians. A sweep of Pi yields the half
// torus; its ends stay open.
func (b *meshBuilder) torus(sweep float64) {
	const majorRadius, minorRadius = 0.5, 0.25
	rings := meshSegments
	sides := meshSegments / 2

	for i := 0; i <= rings; i++ {
		u := sweep * float64(i) / float64(rings)
		cu, su := float32(math.Cos(u)), float32(math.Sin(u))
		for j := 0; j <= sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			cv, sv := float32(math.Cos(v)), float32(math.Sin(v))

			pos := mgl32.Vec3{
				(majorRadius + minorRadius*cv) * cu,
				(majorRadius + minorRadius*cv) * su,
				minorRadius * sv,
			}
			normal := mgl32.Vec3{cv * cu, cv * su, sv}
			b.vertex(pos, normal, mgl32.Vec2{float32(i) / float32(rings), float32(j) / float32(sides)})
		}
	}
	rowLen := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*rowLen + uint32(j)
			b.triangle(a, a+rowLen, a+1)
			b.triangle(a+1, a+rowLen, a+rowLen+1)
		}
	}
}

// pyramid builds a pyramid with a regular sides-gon base (3 or 4),
// base at y=-0.5, apex at y=0.5, circumradius 0.5.
func (b *meshBuilder) pyramid(sides int) {
	apex := mgl32.Vec3{0, 0.5, 0}
	base := make([]mgl32.Vec3, sides)
	for i := 0; i < sides; i++ {
		// offset so pyramid4 sits axis-aligned
		angle := 2*math.Pi*float64(i)/float64(sides) + math.Pi/float64(sides)
		base[i] = mgl32.Vec3{0.5 * float32(math.Cos(angle)), -0.5, 0.5 * float32(math.Sin(angle))}
	}

	for i := 0; i < sides; i++ {
		next := (i + 1) % sides
		b.face(
			[]mgl32.Vec3{base[next], base[i], apex},
			[]mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}},
		)
	}

	// bottom, wound to face -Y
	bottom := make([]mgl32.Vec3, sides)
	uvs := make([]mgl32.Vec2, sides)
	for i := 0; i < sides; i++ {
		bottom[i] = base[i]
		uvs[i] = mgl32.Vec2{bottom[i].X() + 0.5, bottom[i].Z() + 0.5}
	}
	b.face(bottom, uvs)
}

// prism is a triangular prism: an equilateral triangle cross-section
// in the XY plane extruded along Z over [-0.5, 0.5].
func (b *meshBuilder) prism() {
	tri := [3]mgl32.Vec2{}
	for i := 0; i < 3; i++ {
		angle := 2*math.Pi*float64(i)/3 + math.Pi/2
		tri[i] = mgl32.Vec2{0.5 * float32(math.Cos(angle)), 0.5 * float32(math.Sin(angle))}
	}

	// side quads
	for i := 0; i < 3; i++ {
		next := (i + 1) % 3
		b.face(
			[]mgl32.Vec3{
				{tri[i].X(), tri[i].Y(), 0.5},
				{tri[next].X(), tri[next].Y(), 0.5},
				{tri[next].X(), tri[next].Y(), -0.5},
				{tri[i].X(), tri[i].Y(), -0.5},
			},
			[]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		)
	}

	// front cap (+Z) and back cap (-Z)
	b.face(
		[]mgl32.Vec3{
			{tri[0].X(), tri[0].Y(), 0.5},
			{tri[2].X(), tri[2].Y(), 0.5},
			{tri[1].X(), tri[1].Y(), 0.5},
		},
		[]mgl32.Vec2{{0.5, 1}, {1, 0}, {0, 0}},
	)
	b.face(
		[]mgl32.Vec3{
			{tri[0].X(), tri[0].Y(), -0.5},
			{tri[1].X(), tri[1].Y(), -0.5},
			{tri[2].X(), tri[2].Y(), -0.5},
		},
		[]mgl32.Vec2{{0.5, 1}, {0, 0}, {1, 0}},
	)
}
