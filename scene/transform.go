package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds a model matrix from independent scale,
// rotation and position parameters. Rotation angles are in degrees.
//
// The composition order is translate * rotX * rotY * rotZ * scale,
// so a vertex is scaled first, then rotated around Z, Y and X in that
// order, and translated last. Swapping the order changes the result
// for any non-trivial rotation/translation combination.
func ComposeTransform(scale mgl32.Vec3,
	xRotationDegrees, yRotationDegrees, zRotationDegrees float32,
	position mgl32.Vec3) mgl32.Mat4 {

	scaleM := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(xRotationDegrees))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(yRotationDegrees))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(zRotationDegrees))
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaleM)
}
