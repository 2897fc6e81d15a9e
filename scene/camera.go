// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Camera defines the properties of the camera
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// target location for the camera, where it is pointing at; reset by a call to LookAt
	Target math32.Vector3

	// up direction for camera; reset by a call to LookAt
	UpDir math32.Vector3

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32
}

// Defaults sets the default camera parameters.
func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = .1
	cm.Far = 1000
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAt points the camera at the given target location, using the given up
// direction. The orientation is kept until the next LookAt, so moving
// the camera afterwards translates the view without re-aiming it.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	cm.UpDir = upDir
	cm.Pose.Quat.SetFromRotationMatrix(math32.NewLookAt(cm.Pose.Pos, target, upDir))
}

// SetAspect sets the aspect ratio from the viewport size in pixels.
// A zero height leaves the aspect unchanged.
func (cm *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the matrix that transforms world coordinates into
// camera coordinates (the inverse of the camera pose).
func (cm *Camera) ViewMatrix() *math32.Matrix4 {
	var cview math32.Matrix4
	cview.SetTransform(cm.Pose.Pos, cm.Pose.Quat, math32.Vec3(1, 1, 1))
	view, _ := cview.Inverse()
	return view
}

// ViewProjection returns the combined projection * view matrix.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	var prjn, vp math32.Matrix4
	prjn.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	vp.MulMatrices(&prjn, cm.ViewMatrix())
	return vp
}

// Project transforms a world point by the view projection matrix into
// normalized device coordinates. It returns false for points behind the
// camera or outside the near/far range.
func Project(vp *math32.Matrix4, pt math32.Vector3) (math32.Vector3, bool) {
	v4 := math32.Vector4{X: pt.X, Y: pt.Y, Z: pt.Z, W: 1}.MulMatrix4(vp)
	if v4.W <= 0 {
		return math32.Vector3{}, false
	}
	ndc := v4.PerspDiv()
	return ndc, ndc.Z >= -1 && ndc.Z <= 1
}
