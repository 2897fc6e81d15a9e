// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a small 3D scenegraph: parented transform nodes
// (groups and solids), materials, textures, lights and a camera.
// World transforms are always derived by composing each node's local
// pose with its parent's world matrix, so a node's motion is expressed
// only relative to its parent.
package scene

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
)

// Scene is the overall scenegraph containing nodes as children of Root.
type Scene struct {

	// Name of the scene
	Name string

	// Root is the top-level group; everything rendered is under it.
	Root *Group

	// camera determines view onto scene
	Camera Camera

	// Background is drawn behind everything, scaled to the viewport.
	Background *Texture

	// BackgroundColor is used when there is no usable Background.
	BackgroundColor color.RGBA

	// all lights used in the scene
	Lights *ordmap.Map[string, Light]

	// textures shared by name
	Textures *ordmap.Map[string, *Texture]
}

// NewScene returns a new empty Scene with a default camera.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Root = NewGroup(nil, name)
	sc.Camera.Defaults()
	sc.BackgroundColor = color.RGBA{A: 255}
	sc.Lights = ordmap.New[string, Light]()
	sc.Textures = ordmap.New[string, *Texture]()
	return sc
}

// Add adds n as a child of the scene root.
func (sc *Scene) Add(n Node) {
	sc.Root.AddChild(n)
}

// Contains reports whether n is attached under the scene root.
func (sc *Scene) Contains(n Node) bool {
	return n.AsNodeBase().IsAncestor(sc.Root)
}

// AddLight adds the light, replacing any light of the same name.
func (sc *Scene) AddLight(lt Light) {
	nm := lt.AsLightBase().Name
	if idx, ok := sc.Lights.IndexByKeyTry(nm); ok {
		sc.Lights.ReplaceIndex(idx, nm, lt)
		return
	}
	sc.Lights.Add(nm, lt)
}

// Light returns the light of the given name.
func (sc *Scene) Light(name string) (Light, bool) {
	return sc.Lights.ValueByKeyTry(name)
}

// Texture returns the texture of the given name, creating it for the
// given file if it does not exist yet. Textures are shared, so every
// material using the same name uses the same image.
func (sc *Scene) Texture(name, file string) *Texture {
	if tx, ok := sc.Textures.ValueByKeyTry(name); ok {
		return tx
	}
	tx := NewTexture(name, file)
	sc.Textures.Add(name, tx)
	return tx
}

// UpdateWorld recomputes all world matrices from the root down.
func (sc *Scene) UpdateWorld() {
	sc.Root.UpdateWorld(nil)
}

// Solids returns all visible solids, in depth-first order.
func (sc *Scene) Solids() []*Solid {
	var slds []*Solid
	sc.Root.WalkDown(func(n Node) bool {
		if !n.AsNodeBase().Visible {
			return Break
		}
		if sld, ok := n.(*Solid); ok {
			slds = append(slds, sld)
		}
		return Continue
	})
	return slds
}
