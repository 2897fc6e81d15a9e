// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is the rendering engine boundary: it renders a
// [scene.Scene] from its camera into an output surface, and keeps the
// surface and camera in step when the viewport is resized.
package render

import (
	"image"

	"cogentcore.org/solarsys/scene"
)

// Engine renders a scene from its camera onto an output surface.
//
// Some scene state is only meaningful to a GPU engine and is passed
// through unchanged by [Raster]: [scene.Material.DoubleSided], the
// shadow flags of [scene.Solid], and the Penumbra, ShadowNear and
// ShadowFar settings of [scene.PointLight]. Raster does honor
// [scene.Material.Transparent] by blending translucent surface colors.
type Engine interface {

	// Render draws the scene as seen from sc.Camera.
	Render(sc *scene.Scene) error

	// SetSize resizes the output surface; the next Render uses the new size.
	SetSize(sz image.Point)

	// Size returns the current output size.
	Size() image.Point
}

// Viewport connects window resize events to an engine and a camera.
type Viewport struct {
	Engine Engine
	Camera *scene.Camera
}

// Resize handles one resize event: the camera aspect becomes w/h and
// the engine surface is resized once, synchronously, so no later
// frame renders at the stale size.
func (vp *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	vp.Camera.SetAspect(w, h)
	vp.Engine.SetSize(image.Pt(w, h))
}
