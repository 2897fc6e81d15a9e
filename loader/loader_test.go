// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/solarsys/frame"
	"cogentcore.org/solarsys/scene"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeOBJ = `# two triangles and a square
o tri
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o quad
v 0 0 1
v 2 0 1
v 2 2 1
v 0 2 1
f 4/1/1 5/2/1 6/3/1 -1/4/1
`

func TestReadOBJ(t *testing.T) {
	gp, err := ReadOBJ(strings.NewReader(cubeOBJ), "cube")
	require.NoError(t, err)
	assert.Equal(t, "cube", gp.Name)
	require.Len(t, gp.Children(), 2)

	tri := gp.Children()[0].(*scene.Solid)
	assert.Equal(t, "tri", tri.Name)
	md := tri.Mesh.(*scene.Model)
	assert.Equal(t, 1, md.Faces)
	assert.Len(t, md.Vertices, 3)

	quad := gp.Children()[1].(*scene.Solid).Mesh.(*scene.Model)
	assert.Len(t, quad.Vertices, 4)
	assert.InDelta(t, 2, quad.BBox.Max.X, 1e-6)
	assert.InDelta(t, 1, quad.BBox.Min.Z, 1e-6)
}

func TestReadOBJErrors(t *testing.T) {
	_, err := ReadOBJ(strings.NewReader("v 0 0\n"), "bad")
	assert.Error(t, err)
	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"), "bad")
	assert.Error(t, err)
	_, err = ReadOBJ(strings.NewReader("v 0 0 0\n"), "empty")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, GLB, Detect([]byte("glTF\x02\x00\x00\x00"), "model.bin"))
	assert.Equal(t, OBJ, Detect([]byte("v 0 0 0"), "ship.OBJ"))
	assert.Equal(t, GLTF, Detect([]byte("{}"), "ship.gltf"))
	assert.Equal(t, Unknown, Detect([]byte("hello"), "ship.txt"))
	assert.Equal(t, "glb", GLB.String())
	assert.Equal(t, "ship", modelName("/a/b/ship.obj"))
}

func TestLoadDeliversOnQueue(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "cube.obj")
	require.NoError(t, os.WriteFile(fn, []byte(cubeOBJ), 0o644))

	q := &frame.Queue{}
	ld := NewLoader(q, 2)
	var model *scene.Group
	var fracs []float64
	ld.Load(fn, Callbacks{
		OnLoad:     func(m *scene.Group) { model = m },
		OnProgress: func(f float64) { fracs = append(fracs, f) },
		OnError:    func(err error) { t.Errorf("unexpected error: %v", err) },
	})
	ld.Wait()
	assert.Nil(t, model, "callbacks must wait for the queue")
	q.Drain()
	require.NotNil(t, model)
	assert.Equal(t, "cube", model.Name)
	assert.Nil(t, model.Parent())
	require.NotEmpty(t, fracs)
	assert.Equal(t, 1.0, fracs[len(fracs)-1])
}

func TestLoadFailure(t *testing.T) {
	q := &frame.Queue{}
	ld := NewLoader(q, 1)
	loaded := false
	var gotErr error
	ld.Load(filepath.Join(t.TempDir(), "missing.obj"), Callbacks{
		OnLoad:  func(*scene.Group) { loaded = true },
		OnError: func(err error) { gotErr = err },
	})
	ld.Load(filepath.Join(t.TempDir(), "nil-callbacks.glb"), Callbacks{})
	ld.Wait()
	q.Drain()
	assert.False(t, loaded)
	assert.Error(t, gotErr)
}

func TestLoadUnknownFormat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(fn, []byte("hello"), 0o644))
	q := &frame.Queue{}
	ld := NewLoader(q, 0)
	var gotErr error
	ld.Load(fn, Callbacks{OnError: func(err error) { gotErr = err }})
	ld.Wait()
	q.Drain()
	assert.ErrorContains(t, gotErr, "unrecognized")
}

// shipDoc is a hull with a child antenna, both sharing one triangle mesh.
func shipDoc() *gltf.Document {
	return &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0"},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Nodes: []uint32{0}}},
		Nodes: []*gltf.Node{
			{Name: "hull", Translation: [3]float64{1, 2, 3}, Rotation: gltf.DefaultRotation,
				Scale: [3]float64{2, 2, 2}, Mesh: gltf.Index(0), Children: []uint32{1}},
			{Name: "antenna", Rotation: gltf.DefaultRotation, Scale: gltf.DefaultScale, Mesh: gltf.Index(0)},
		},
		Meshes: []*gltf.Mesh{{Name: "body", Primitives: []*gltf.Primitive{
			{Attributes: gltf.Attribute{gltf.POSITION: 0}},
		}}},
		Accessors: []*gltf.Accessor{{
			ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 3,
			Min: []float64{-1, 0, -2}, Max: []float64{1, 4, 2},
		}},
	}
}

func writeGLB(t *testing.T, fn string, doc *gltf.Document) {
	f, err := os.Create(fn)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gltf.NewEncoder(f).Encode(doc))
}

func TestReadGLB(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ship.glb")
	writeGLB(t, fn, shipDoc())
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()

	gp, err := ReadGLB(f, "ship")
	require.NoError(t, err)
	assert.Equal(t, "ship", gp.Name)
	require.Len(t, gp.Children(), 1)
	hull := gp.Children()[0].(*scene.Group)
	assert.Equal(t, "hull", hull.Name)
	assert.Equal(t, float32(2), hull.Pose.Pos.Y)
	assert.Equal(t, float32(2), hull.Pose.Scale.X)
	require.Len(t, hull.Children(), 2)

	body := hull.Children()[0].(*scene.Solid)
	assert.Equal(t, "body.0", body.Name)
	md := body.Mesh.(*scene.Model)
	assert.InDelta(t, 4, md.BBox.Max.Y, 1e-6)
	assert.InDelta(t, -2, md.BBox.Min.Z, 1e-6)

	antenna := hull.Children()[1].(*scene.Group)
	assert.Equal(t, "antenna", antenna.Name)
	assert.Len(t, antenna.Children(), 1)
}

func TestReadGLBMalformed(t *testing.T) {
	tests := []struct {
		name   string
		modify func(doc *gltf.Document)
		want   string
	}{
		{"scene", func(doc *gltf.Document) { doc.Scene = gltf.Index(4) }, "scene 4"},
		{"root", func(doc *gltf.Document) { doc.Scenes[0].Nodes = []uint32{3} }, "node 3"},
		{"child", func(doc *gltf.Document) { doc.Nodes[1].Children = []uint32{7} }, "node 7"},
		{"cycle", func(doc *gltf.Document) { doc.Nodes[1].Children = []uint32{0} }, "own ancestor"},
		{"mesh", func(doc *gltf.Document) { doc.Nodes[1].Mesh = gltf.Index(2) }, "mesh 2"},
		{"accessor", func(doc *gltf.Document) {
			doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION] = 5
		}, "accessor 5"},
		{"empty", func(doc *gltf.Document) {
			doc.Nodes[0].Mesh = nil
			doc.Nodes[1].Mesh = nil
		}, "no meshes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := shipDoc()
			tt.modify(doc)
			_, err := fromDocument(doc, "ship")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadMalformedGLTF(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "broken.gltf")
	doc := `{"asset":{"version":"2.0"},"scenes":[{"nodes":[3]}],"nodes":[{"name":"a"}]}`
	require.NoError(t, os.WriteFile(fn, []byte(doc), 0o644))
	glb := filepath.Join(dir, "ship.glb")
	writeGLB(t, glb, shipDoc())

	q := &frame.Queue{}
	ld := NewLoader(q, 2)
	var gotErr error
	var model *scene.Group
	ld.Load(fn, Callbacks{
		OnLoad:  func(*scene.Group) { t.Error("malformed file must not load") },
		OnError: func(err error) { gotErr = err },
	})
	ld.Load(glb, Callbacks{OnLoad: func(m *scene.Group) { model = m }})
	ld.Wait()
	q.Drain()
	assert.ErrorContains(t, gotErr, "node 3")
	require.NotNil(t, model)
	assert.Equal(t, "ship", model.Name)
}

func TestSafeLoadRecovers(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cube.obj")
	require.NoError(t, os.WriteFile(fn, []byte(cubeOBJ), 0o644))
	// a loader without a queue panics on its first progress report
	ld := NewLoader(nil, 1)
	model, err := ld.safeLoad(fn, func(float64) {})
	assert.Nil(t, model)
	assert.ErrorContains(t, err, "panic while decoding")
}
