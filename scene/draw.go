package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mpoletaev/glscene/utils"
)

// DrawRequest collects the complete state for drawing one primitive
// instance. Submit validates the request before touching the backend,
// so an incomplete request never leaves partial state behind.
//
// A valid request carries a transform and exactly one appearance: a
// flat color or a texture tag. A UV scale is only meaningful for
// textured requests. A request without a material leaves the
// previously pushed material in effect.
type DrawRequest struct {
	shape Shape

	transform    mgl32.Mat4
	hasTransform bool

	color    utils.ColorFloat
	hasColor bool

	textureTag string
	hasTexture bool

	uvScale    mgl32.Vec2
	hasUVScale bool

	materialTag string
	hasMaterial bool
}

// NewDraw starts a request for one instance of the given shape.
func NewDraw(shape Shape) *DrawRequest {
	return &DrawRequest{shape: shape}
}

// WithTransform composes the model matrix from scale, rotation degrees
// and position.
func (r *DrawRequest) WithTransform(scale mgl32.Vec3,
	xRotationDegrees, yRotationDegrees, zRotationDegrees float32,
	position mgl32.Vec3) *DrawRequest {

	return r.WithMatrix(ComposeTransform(scale,
		xRotationDegrees, yRotationDegrees, zRotationDegrees, position))
}

// WithMatrix sets an already composed model matrix.
func (r *DrawRequest) WithMatrix(m mgl32.Mat4) *DrawRequest {
	r.transform = m
	r.hasTransform = true
	return r
}

// WithColor sets a flat RGBA color appearance.
func (r *DrawRequest) WithColor(c utils.ColorFloat) *DrawRequest {
	r.color = c
	r.hasColor = true
	return r
}

// WithTexture sets a textured appearance by registry tag.
func (r *DrawRequest) WithTexture(tag string) *DrawRequest {
	r.textureTag = tag
	r.hasTexture = true
	return r
}

// WithUVScale sets the texture coordinate scale for a textured request.
func (r *DrawRequest) WithUVScale(u, v float32) *DrawRequest {
	r.uvScale = mgl32.Vec2{u, v}
	r.hasUVScale = true
	return r
}

// WithMaterial selects the material to upload by registry tag.
func (r *DrawRequest) WithMaterial(tag string) *DrawRequest {
	r.materialTag = tag
	r.hasMaterial = true
	return r
}

// Validate reports whether the request is complete enough to submit.
func (r *DrawRequest) Validate() error {
	if !r.hasTransform {
		return errors.Errorf("draw %v: no transform set", r.shape)
	}
	if r.hasColor && r.hasTexture {
		return errors.Errorf("draw %v: both color and texture set", r.shape)
	}
	if !r.hasColor && !r.hasTexture {
		return errors.Errorf("draw %v: no color or texture set", r.shape)
	}
	if r.hasUVScale && !r.hasTexture {
		return errors.Errorf("draw %v: UV scale set on an untextured draw", r.shape)
	}
	return nil
}

// Submit validates the request, pushes its state through the bridge in
// the required order (transform, appearance, material, UV scale) and
// issues exactly one draw call. Textured requests without an explicit
// UV scale push the neutral scale (1,1) so the previous draw's scale
// cannot leak in.
func (r *DrawRequest) Submit(b *StateBridge, meshes Meshes) error {
	if err := r.Validate(); err != nil {
		return err
	}

	b.SetModelMatrix(r.transform)

	if r.hasColor {
		b.SetShaderColor(r.color[0], r.color[1], r.color[2], r.color[3])
	} else {
		b.SetShaderTexture(r.textureTag)
	}

	if r.hasMaterial {
		b.SetShaderMaterial(r.materialTag)
	}

	if r.hasTexture {
		if r.hasUVScale {
			b.SetTextureUVScale(r.uvScale.X(), r.uvScale.Y())
		} else {
			b.SetTextureUVScale(1, 1)
		}
	}

	if err := meshes.Draw(r.shape); err != nil {
		return errors.Wrapf(err, "draw %v", r.shape)
	}
	return nil
}
