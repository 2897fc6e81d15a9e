// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import "cogentcore.org/solarsys/scene"

// AxisSet is the append-only list of orbit indicators sharing one
// visibility toggle. Nodes added after a toggle take the current
// visibility, so the order of Add and SetVisible does not matter.
type AxisSet struct {
	nodes   []scene.Node
	visible bool
}

// NewAxisSet returns an empty set with the given visibility.
func NewAxisSet(visible bool) *AxisSet {
	return &AxisSet{visible: visible}
}

// Add appends n and applies the current visibility to it.
func (as *AxisSet) Add(n scene.Node) {
	n.AsNodeBase().Visible = as.visible
	as.nodes = append(as.nodes, n)
}

// SetVisible shows or hides every node in the set.
func (as *AxisSet) SetVisible(visible bool) {
	as.visible = visible
	for _, n := range as.nodes {
		n.AsNodeBase().Visible = visible
	}
}

// Visible returns the current visibility.
func (as *AxisSet) Visible() bool {
	return as.visible
}

// Nodes returns the nodes in the order they were added.
func (as *AxisSet) Nodes() []scene.Node {
	return as.nodes
}
