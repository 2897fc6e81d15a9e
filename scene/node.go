// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"

	"cogentcore.org/core/math32"
)

// Walk return values, matching the tree package convention.
const (
	Continue = true
	Break    = false
)

// Node is the interface for all scene graph nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] holding the shared node state.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [Solid] node with a mesh.
	IsSolid() bool
}

// NodeBase is the basic scene graph node, which has a pose, a
// visibility flag, and an ordered list of children. Children inherit
// the transform and the visibility of their parent.
type NodeBase struct {

	// Name is used in paths and for lookup; it need not be unique.
	Name string

	// Pose is the position, rotation and scale relative to the parent.
	Pose Pose

	// Visible, when false, hides this node and all of its descendants.
	Visible bool

	this     Node
	parent   Node
	children []Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

// initNode must be called by every node constructor.
func (nb *NodeBase) initNode(this Node, name string) {
	nb.this = this
	nb.Name = name
	nb.Visible = true
	nb.Pose.Defaults()
}

// This returns the outer node embedding this NodeBase.
func (nb *NodeBase) This() Node {
	return nb.this
}

// Parent returns the parent node, or nil for a detached node.
func (nb *NodeBase) Parent() Node {
	return nb.parent
}

// Children returns the children in order. The slice must not be modified.
func (nb *NodeBase) Children() []Node {
	return nb.children
}

// AddChild appends kid to the children, first removing it from any
// previous parent (a node has exactly one parent).
func (nb *NodeBase) AddChild(kid Node) {
	kb := kid.AsNodeBase()
	if kb.parent == nb.this {
		return
	}
	if kb.parent != nil {
		kb.parent.AsNodeBase().RemoveChild(kid)
	}
	kb.parent = nb.this
	nb.children = append(nb.children, kid)
}

// RemoveChild removes kid, returning false if it is not a child.
func (nb *NodeBase) RemoveChild(kid Node) bool {
	for i, k := range nb.children {
		if k == kid {
			nb.children = append(nb.children[:i], nb.children[i+1:]...)
			kid.AsNodeBase().parent = nil
			return true
		}
	}
	return false
}

// WalkDown calls fn on this node and then, depth first, on all
// descendants. Returning [Break] skips the children of that node.
func (nb *NodeBase) WalkDown(fn func(n Node) bool) {
	if !fn(nb.this) {
		return
	}
	for _, k := range nb.children {
		k.AsNodeBase().WalkDown(fn)
	}
}

// Path returns the slash-separated names from the root to this node.
func (nb *NodeBase) Path() string {
	var names []string
	for n := nb.this; n != nil; n = n.AsNodeBase().parent {
		names = append(names, n.AsNodeBase().Name)
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteString("/")
		sb.WriteString(names[i])
	}
	return sb.String()
}

// IsAncestor reports whether anc is this node or one of its ancestors.
func (nb *NodeBase) IsAncestor(anc Node) bool {
	for n := nb.this; n != nil; n = n.AsNodeBase().parent {
		if n == anc {
			return true
		}
	}
	return false
}

// RotateY spins the node about its local Y axis by angle radians.
func (nb *NodeBase) RotateY(angle float32) {
	nb.Pose.RotateOnAxisRad(0, 1, 0, angle)
}

// UpdateWorld recomputes the local and world matrices of this node and
// its descendants, given the parent world matrix (nil for identity).
func (nb *NodeBase) UpdateWorld(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	for _, k := range nb.children {
		k.AsNodeBase().UpdateWorld(&nb.Pose.WorldMatrix)
	}
}

// WalkSolids calls fn for every [Solid] at or below n.
func WalkSolids(n Node, fn func(sld *Solid)) {
	n.AsNodeBase().WalkDown(func(k Node) bool {
		if sld, ok := k.(*Solid); ok {
			fn(sld)
		}
		return Continue
	})
}
