// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Mesh is the interface for the shape of a [Solid]. Meshes carry only
// the parameters the rendering engine needs to build geometry.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name of mesh
	Name string

	// BBox is the local bounding box of the mesh.
	BBox math32.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// Sphere is a sphere mesh centered on the origin.
type Sphere struct {
	MeshBase

	// Radius of the sphere
	Radius float32

	// Segments is the number of width and height segments
	Segments int
}

// NewSphere returns a sphere mesh of the given radius.
func NewSphere(name string, radius float32, segs int) *Sphere {
	sp := &Sphere{Radius: radius, Segments: segs}
	sp.Name = name
	sp.BBox = math32.Box3{Min: math32.Vec3(-radius, -radius, -radius), Max: math32.Vec3(radius, radius, radius)}
	return sp
}

// Ring is a flat annulus in the local XY plane, between Inner and Outer radius.
// Rotating it by -pi/2 about X lays it in the orbital XZ plane.
type Ring struct {
	MeshBase

	// Inner radius
	Inner float32

	// Outer radius
	Outer float32

	// Segments is the number of angular segments
	Segments int
}

// NewRing returns a ring mesh between inner and outer radius.
func NewRing(name string, inner, outer float32, segs int) *Ring {
	rg := &Ring{Inner: inner, Outer: outer, Segments: segs}
	rg.Name = name
	rg.BBox = math32.Box3{Min: math32.Vec3(-outer, -outer, 0), Max: math32.Vec3(outer, outer, 0)}
	return rg
}

// Axes draws the three coordinate axes from the origin out to Size.
type Axes struct {
	MeshBase

	// Size is the length of each axis line
	Size float32
}

// NewAxes returns an axes helper mesh.
func NewAxes(name string, size float32) *Axes {
	ax := &Axes{Size: size}
	ax.Name = name
	ax.BBox = math32.Box3{Max: math32.Vec3(size, size, size)}
	return ax
}

// Model is loaded vertex geometry from an external model file.
type Model struct {
	MeshBase

	// Vertices are the vertex positions, which may be empty when only
	// the bounds are known.
	Vertices []math32.Vector3

	// Faces is the number of faces (triangles or polygons).
	Faces int
}

// NewModel returns a model mesh with the bounding box of vertices.
func NewModel(name string, vertices []math32.Vector3, faces int) *Model {
	md := &Model{Vertices: vertices, Faces: faces}
	md.Name = name
	if len(vertices) == 0 {
		return md
	}
	md.BBox = math32.B3Empty()
	for _, v := range vertices {
		md.BBox.ExpandByPoint(v)
	}
	return md
}

// Center returns the center of the mesh bounds.
func (ms *MeshBase) Center() math32.Vector3 {
	return ms.BBox.Min.Add(ms.BBox.Max).MulScalar(0.5)
}

// Extent returns the largest half-size of the mesh bounds.
func (ms *MeshBase) Extent() float32 {
	sz := ms.BBox.Max.Sub(ms.BBox.Min).MulScalar(0.5)
	return math32.Max(sz.X, math32.Max(sz.Y, sz.Z))
}
