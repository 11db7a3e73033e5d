package gldriver

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Shader is the scene shader program. It implements scene.ShaderBackend
// by resolving uniform names lazily and caching their locations.
type Shader struct {
	program   *Program
	locations map[string]int32
}

// NewShader compiles and links the embedded scene shaders. The program
// is left active.
func NewShader() (*Shader, error) {
	p, err := LoadProgram(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "scene program")
	}
	s := &Shader{
		program:   p,
		locations: make(map[string]int32),
	}
	s.Use()
	return s, nil
}

// Use makes the scene program current.
func (s *Shader) Use() {
	gl.UseProgram(s.program.Id)
}

func (s *Shader) Delete() {
	s.program.Delete()
}

// location resolves a uniform name. Unknown names yield -1, which GL
// treats as a silent no-op on upload.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program.Id, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(s.location(name), v.X(), v.Y(), v.Z(), v.W())
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v.X(), v.Y(), v.Z())
}

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(s.location(name), v.X(), v.Y())
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

func (s *Shader) SetSampler(name string, unit int32) {
	gl.Uniform1i(s.location(name), unit)
}
