// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the overall scene object and not within the graph.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Intensity multiplies the color.
	Intensity float32 `min:"0"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// AmbientLight provides diffuse uniform lighting.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds a new ambient light to the scene.
func NewAmbientLight(sc *Scene, name string, intensity float32, clr color.RGBA) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

// PointLight is an omnidirectional light with a position
// and associated decay factors.
type PointLight struct {
	LightBase

	// position of light in world coordinates
	Pos math32.Vector3

	// Distance is the range at which the light reaches zero; 0 means unlimited.
	Distance float32

	// Penumbra softens shadow edges, 0 to 1.
	Penumbra float32

	// CastShadow enables shadow mapping from this light.
	CastShadow bool

	// ShadowNear and ShadowFar bound the shadow camera.
	ShadowNear float32
	ShadowFar  float32
}

// NewPointLight adds a new point light to the scene at the origin.
func NewPointLight(sc *Scene, name string, intensity, distance float32, clr color.RGBA) *PointLight {
	lt := &PointLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	lt.Distance = distance
	sc.AddLight(lt)
	return lt
}

// Attenuation returns the light falloff factor at the given distance,
// linear to zero at Distance.
func (pl *PointLight) Attenuation(dist float32) float32 {
	if pl.Distance <= 0 {
		return 1
	}
	return math32.Max(0, 1-dist/pl.Distance)
}
