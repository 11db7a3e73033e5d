// Package scenefile parses declarative YAML scene descriptions: the
// textures, materials and lights to register, the camera, and the
// object instances to draw each frame.
package scenefile

import (
	"io/ioutil"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Texture struct {
	Path string `yaml:"path"`
	Tag  string `yaml:"tag"`
}

type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    [3]float32 `yaml:"ambientColor"`
	AmbientStrength float32    `yaml:"ambientStrength"`
	DiffuseColor    [3]float32 `yaml:"diffuseColor"`
	SpecularColor   [3]float32 `yaml:"specularColor"`
	Shininess       float32    `yaml:"shininess"`
}

type Light struct {
	Position          [3]float32 `yaml:"position"`
	AmbientColor      [3]float32 `yaml:"ambientColor"`
	DiffuseColor      [3]float32 `yaml:"diffuseColor"`
	SpecularColor     [3]float32 `yaml:"specularColor"`
	FocalStrength     float32    `yaml:"focalStrength"`
	SpecularIntensity float32    `yaml:"specularIntensity"`
}

type Camera struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	FOVDegrees float32    `yaml:"fovDegrees"`
}

// Object is one drawable instance. Exactly one of Color and Texture
// must be set; UVScale is only allowed on textured objects.
type Object struct {
	Name            string      `yaml:"name"`
	Shape           string      `yaml:"shape"`
	Scale           [3]float32  `yaml:"scale"`
	RotationDegrees [3]float32  `yaml:"rotationDegrees"`
	Position        [3]float32  `yaml:"position"`
	Color           *[4]float32 `yaml:"color"`
	Texture         string      `yaml:"texture"`
	UVScale         *[2]float32 `yaml:"uvScale"`
	Material        string      `yaml:"material"`
}

type Scene struct {
	Textures  []Texture  `yaml:"textures"`
	Materials []Material `yaml:"materials"`
	Lights    []Light    `yaml:"lights"`
	Camera    Camera     `yaml:"camera"`
	Objects   []Object   `yaml:"objects"`
}

// FromFile reads, parses and validates a scene description.
func FromFile(path string) (*Scene, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene file")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene file %q", path)
	}
	return s, nil
}

// Parse unmarshals and validates a scene description, then fills in
// defaults: zero scale becomes unit scale, a zero camera FOV becomes
// 50 degrees.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "unmarshal scene")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.setDefaults()
	return &s, nil
}

// Validate checks the structural rules of a scene description.
// Dangling texture and material references are not rejected here;
// lookup misses degrade silently at draw time.
func (s *Scene) Validate() error {
	for i, t := range s.Textures {
		if t.Path == "" || t.Tag == "" {
			return errors.Errorf("texture %d: path and tag are required", i)
		}
	}
	for i, m := range s.Materials {
		if m.Tag == "" {
			return errors.Errorf("material %d: tag is required", i)
		}
	}
	for i, o := range s.Objects {
		name := o.Name
		if name == "" {
			name = "object " + strconv.Itoa(i)
		}
		if o.Shape == "" {
			return errors.Errorf("%s: shape is required", name)
		}
		if o.Color != nil && o.Texture != "" {
			return errors.Errorf("%s: color and texture are mutually exclusive", name)
		}
		if o.Color == nil && o.Texture == "" {
			return errors.Errorf("%s: either color or texture is required", name)
		}
		if o.UVScale != nil && o.Texture == "" {
			return errors.Errorf("%s: uvScale requires a texture", name)
		}
	}
	return nil
}

func (s *Scene) setDefaults() {
	for i := range s.Objects {
		if s.Objects[i].Scale == [3]float32{} {
			s.Objects[i].Scale = [3]float32{1, 1, 1}
		}
	}
	if s.Camera.FOVDegrees == 0 {
		s.Camera.FOVDegrees = 50
	}
}
