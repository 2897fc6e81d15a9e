// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/solarsys/scene"
)

// lighting is the per-frame summary of the scene lights.
type lighting struct {
	ambient [3]float32
	points  []*scene.PointLight
}

func collectLights(sc *scene.Scene) *lighting {
	lt := &lighting{}
	for _, l := range sc.Lights.Values() {
		lb := l.AsLightBase()
		if !lb.On {
			continue
		}
		switch l := l.(type) {
		case *scene.AmbientLight:
			lt.ambient[0] += float32(lb.Color.R) / 255 * lb.Intensity
			lt.ambient[1] += float32(lb.Color.G) / 255 * lb.Intensity
			lt.ambient[2] += float32(lb.Color.B) / 255 * lb.Intensity
		case *scene.PointLight:
			lt.points = append(lt.points, l)
		}
	}
	return lt
}

// shade returns the displayed color of a material at world position p.
func shade(mt *scene.Material, lt *lighting, p math32.Vector3) color.RGBA {
	base := mt.SurfaceColor()
	if mt.Unlit {
		return base
	}
	f := lt.ambient
	for _, pl := range lt.points {
		k := pl.Intensity * pl.Attenuation(p.Sub(pl.Pos).Length())
		f[0] += float32(pl.Color.R) / 255 * k
		f[1] += float32(pl.Color.G) / 255 * k
		f[2] += float32(pl.Color.B) / 255 * k
	}
	return color.RGBA{
		R: addSat(scale8(base.R, f[0]), mt.Emissive.R),
		G: addSat(scale8(base.G, f[1]), mt.Emissive.G),
		B: addSat(scale8(base.B, f[2]), mt.Emissive.B),
		A: base.A,
	}
}

func scale8(c uint8, f float32) uint8 {
	v := float32(c) * f
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func addSat(a, b uint8) uint8 {
	if int(a)+int(b) > 255 {
		return 255
	}
	return a + b
}
