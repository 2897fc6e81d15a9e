// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
)

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own. It does have a transform that applies to all nodes under it, which is
// what makes it useful as an orbital pivot.
type Group struct {
	NodeBase
}

// NewGroup returns a new Group added to parent, or detached if parent is nil.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.initNode(gp, name)
	if parent != nil {
		parent.AsNodeBase().AddChild(gp)
	}
	return gp
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetScale sets the [Pose.Scale] scale of the group
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Pose.Scale.Set(x, y, z)
	return gp
}

// SetEulerRotationRad sets the [Pose.Quat] rotation from euler angles in radians.
func (gp *Group) SetEulerRotationRad(x, y, z float32) *Group {
	gp.Pose.SetEulerRotationRad(x, y, z)
	return gp
}

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh Mesh

	// Material contains the material properties of the surface.
	Material Material

	// CastShadow and ReceiveShadow are passed through to the engine.
	CastShadow    bool
	ReceiveShadow bool
}

// NewSolid returns a new Solid with the given mesh added to parent,
// or detached if parent is nil.
func NewSolid(parent Node, name string, mesh Mesh) *Solid {
	sld := &Solid{Mesh: mesh}
	sld.initNode(sld, name)
	sld.Material.Defaults()
	if parent != nil {
		parent.AsNodeBase().AddChild(sld)
	}
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// SetEulerRotationRad sets the [Pose.Quat] rotation from euler angles in radians.
func (sld *Solid) SetEulerRotationRad(x, y, z float32) *Solid {
	sld.Pose.SetEulerRotationRad(x, y, z)
	return sld
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetTexture sets the [Material.Texture].
func (sld *Solid) SetTexture(tx *Texture) *Solid {
	sld.Material.Texture = tx
	return sld
}

// SetShadows sets both shadow flags.
func (sld *Solid) SetShadows(cast, receive bool) *Solid {
	sld.CastShadow = cast
	sld.ReceiveShadow = receive
	return sld
}
