// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"io"

	"cogentcore.org/core/math32"
	"cogentcore.org/solarsys/scene"
	"github.com/qmuntal/gltf"
)

// ReadGLB decodes a binary glTF stream into a detached group named name.
func ReadGLB(r io.Reader, name string) (*scene.Group, error) {
	doc := &gltf.Document{}
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return fromDocument(doc, name)
}

// OpenGLTF opens a glTF or GLB file, resolving external buffers
// relative to the file.
func OpenGLTF(path string) (*scene.Group, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc, modelName(path))
}

// fromDocument converts the default scene of doc into a node tree that
// mirrors the glTF node hierarchy. Mesh primitives become solids whose
// bounds come from the POSITION accessor min / max. Every index read from
// the file is checked, so a malformed document is an error.
func fromDocument(doc *gltf.Document, name string) (*scene.Group, error) {
	gp := scene.NewGroup(nil, name)
	var roots []uint32
	switch {
	case doc.Scene != nil:
		if int(*doc.Scene) >= len(doc.Scenes) {
			return nil, fmt.Errorf("gltf %s: scene %d out of range", name, *doc.Scene)
		}
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		for i := range doc.Nodes {
			roots = append(roots, uint32(i))
		}
	}
	gl := &gltfReader{doc: doc, name: name, visiting: map[uint32]bool{}}
	for _, ni := range roots {
		if err := gl.addNode(gp, ni); err != nil {
			return nil, err
		}
	}
	if gl.solids == 0 {
		return nil, fmt.Errorf("gltf %s: no meshes", name)
	}
	return gp, nil
}

// gltfReader walks the node graph of one document.
type gltfReader struct {
	doc      *gltf.Document
	name     string
	solids   int
	visiting map[uint32]bool
}

func (gl *gltfReader) addNode(parent scene.Node, ni uint32) error {
	doc := gl.doc
	if int(ni) >= len(doc.Nodes) || doc.Nodes[ni] == nil {
		return fmt.Errorf("gltf %s: node %d out of range", gl.name, ni)
	}
	if gl.visiting[ni] {
		return fmt.Errorf("gltf %s: node %d is its own ancestor", gl.name, ni)
	}
	gl.visiting[ni] = true
	defer delete(gl.visiting, ni)

	nd := doc.Nodes[ni]
	ng := scene.NewGroup(parent, nd.Name)
	t := nd.TranslationOrDefault()
	r := nd.RotationOrDefault()
	s := nd.ScaleOrDefault()
	ng.Pose.Pos.Set(float32(t[0]), float32(t[1]), float32(t[2]))
	ng.Pose.Quat.Set(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))
	ng.Pose.Scale.Set(float32(s[0]), float32(s[1]), float32(s[2]))

	if nd.Mesh != nil {
		if int(*nd.Mesh) >= len(doc.Meshes) || doc.Meshes[*nd.Mesh] == nil {
			return fmt.Errorf("gltf %s: mesh %d out of range", gl.name, *nd.Mesh)
		}
		ms := doc.Meshes[*nd.Mesh]
		for pi, prim := range ms.Primitives {
			if prim == nil {
				continue
			}
			ai, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if int(ai) >= len(doc.Accessors) || doc.Accessors[ai] == nil {
				return fmt.Errorf("gltf %s: accessor %d out of range", gl.name, ai)
			}
			acc := doc.Accessors[ai]
			mnm := fmt.Sprintf("%s.%d", ms.Name, pi)
			md := scene.NewModel(mnm, nil, int(acc.Count)/3)
			if len(acc.Min) >= 3 && len(acc.Max) >= 3 {
				md.BBox = math32.Box3{
					Min: math32.Vec3(float32(acc.Min[0]), float32(acc.Min[1]), float32(acc.Min[2])),
					Max: math32.Vec3(float32(acc.Max[0]), float32(acc.Max[1]), float32(acc.Max[2])),
				}
			}
			scene.NewSolid(ng, mnm, md)
			gl.solids++
		}
	}
	for _, ci := range nd.Children {
		if err := gl.addNode(ng, ci); err != nil {
			return err
		}
	}
	return nil
}
