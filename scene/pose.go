// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// position of center of element (relative to parent)
	Pos math32.Vector3

	// scale (relative to parent)
	Scale math32.Vector3

	// node rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// local matrix; contains all position/rotation/scale information (relative to parent)
	Matrix math32.Matrix4 `display:"-"`

	// world matrix; contains all absolute position/rotation/scale information
	// (i.e. relative to the scene root)
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat == (math32.Quat{}) {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix based on its Pos, Quat, Scale params
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and
// the parent's world matrix. A nil parent means the identity.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// SetEulerRotationRad sets the rotation from euler angles in radians (XYZ order).
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}

// SetAxisRotationRad sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// RotateOnAxisRad rotates (relative to current rotation) around the given
// local axis by angle in radians.
func (ps *Pose) RotateOnAxisRad(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), angle))
}

// WorldPos returns the current rendering world position; the world
// matrix must be up to date.
func (ps *Pose) WorldPos() math32.Vector3 {
	m := &ps.WorldMatrix
	return math32.Vec3(m[12], m[13], m[14])
}
