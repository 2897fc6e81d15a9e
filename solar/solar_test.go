// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsys/controls"
	"cogentcore.org/solarsys/frame"
	"cogentcore.org/solarsys/loader"
	"cogentcore.org/solarsys/render"
	"cogentcore.org/solarsys/scene"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-2

func newSystem(t *testing.T, assets string) (*System, *controls.State) {
	t.Helper()
	st := controls.NewState()
	if assets == "" {
		assets = t.TempDir()
	}
	sys := Build(scene.NewScene("solar"), DefaultCatalog(), assets, st)
	return sys, st
}

func assertQuat(t *testing.T, want, got math32.Quat) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-5, "Y")
	assert.InDelta(t, want.Z, got.Z, 1e-5, "Z")
	assert.InDelta(t, want.W, got.W, 1e-5, "W")
}

func TestBuildHierarchy(t *testing.T) {
	sys, _ := newSystem(t, "")
	sc := sys.Scene
	require.Len(t, sys.Planets, 8)
	assert.Equal(t, sc.Root, sys.Sun.Mesh.Parent())
	assert.True(t, sys.Sun.Mesh.Material.Unlit)

	cat := DefaultCatalog()
	for i, pl := range sys.Planets {
		assert.Equal(t, cat.Planets[i].Name, pl.Name)
		assert.Equal(t, sc.Root, pl.Pivot.Parent())
		assert.Equal(t, pl.Pivot, pl.Mesh.Parent())
		assert.Equal(t, pl.Pivot, pl.Indicator.Parent())
		assert.Equal(t, cat.Planets[i].Distance, pl.Mesh.Pose.Pos.X)
	}

	earth := sys.Planet("earth")
	require.NotNil(t, earth)
	require.Len(t, earth.Moons, 1)
	moon := earth.Moons[0]
	assert.Equal(t, earth.Mesh, moon.Pivot.Parent())
	assert.Equal(t, earth.Mesh, moon.Indicator.Parent())
	assert.Equal(t, "/solar/earth.pivot/earth/moon.pivot/moon", moon.Mesh.Path())
	require.NotNil(t, earth.Clouds)
	assert.Equal(t, earth.Pivot, earth.Clouds.Parent())
	assert.Nil(t, sys.Planet("pluto"))

	assert.Len(t, sys.Axes.Nodes(), 8+5)
	assert.Len(t, sys.Bodies(), 1+8+5)

	assert.Equal(t, float32(2), sys.Light.Intensity)
	assert.Equal(t, float32(1000), sys.Light.Distance)
	assert.True(t, sys.Light.CastShadow)
	assert.Equal(t, float32(20), sys.Light.ShadowNear)
	assert.Equal(t, float32(100), sys.Light.ShadowFar)
	assert.Equal(t, math32.Vec3(200, 30, 100), sc.Camera.Pose.Pos)
	assert.Equal(t, float32(1000000), sc.Camera.Far)
	require.NotNil(t, sys.Helper)
	assert.True(t, sc.Contains(sys.Helper))
	require.NotNil(t, sc.Background)
}

func TestPivotRotationKeepsLocalPosition(t *testing.T) {
	sys, st := newSystem(t, "")
	st.Freeze = false
	an := NewAnimator(sys, 1)

	local := map[*scene.Solid]math32.Vector3{}
	for _, bd := range sys.Bodies() {
		local[bd.Mesh] = bd.Mesh.Pose.Pos
	}
	earth := sys.Planet("earth")
	moon := earth.Moons[0]
	for range 500 {
		an.Step(st)
	}
	sys.Scene.UpdateWorld()
	for sld, pos := range local {
		assert.Equal(t, pos, sld.Pose.Pos, sld.Name)
	}
	assert.NotEqual(t, math32.Quat{W: 1}, earth.Pivot.Pose.Quat)
	assert.InDelta(t, 93, earth.Mesh.Pose.WorldPos().Length(), tol)
	mp := moon.Mesh.Pose.WorldPos().Sub(earth.Mesh.Pose.WorldPos())
	assert.InDelta(t, 13, mp.Length(), tol)
	assert.Equal(t, 500, an.Frames)
}

func TestFreeze(t *testing.T) {
	sys, st := newSystem(t, "")
	require.True(t, st.Freeze)
	st.FreezeMoons = true
	an := NewAnimator(sys, 1)

	pivots := map[*scene.Group]math32.Quat{}
	for _, pl := range sys.Planets {
		pivots[pl.Pivot] = pl.Pivot.Pose.Quat
		for _, mn := range pl.Moons {
			pivots[mn.Pivot] = mn.Pivot.Pose.Quat
		}
	}
	cam := sys.Scene.Camera.Pose.Pos
	sun := sys.Sun.Mesh.Pose.Quat

	for range 37 {
		an.Step(st)
	}
	for pv, q := range pivots {
		assert.Equal(t, q, pv.Pose.Quat, pv.Name)
	}
	assert.Equal(t, cam, sys.Scene.Camera.Pose.Pos)
	assert.NotEqual(t, sun, sys.Sun.Mesh.Pose.Quat, "self-spin is gated separately")

	st.FreezePlanets = true
	sun = sys.Sun.Mesh.Pose.Quat
	an.Step(st)
	assert.Equal(t, sun, sys.Sun.Mesh.Pose.Quat)
}

func TestCameraDrift(t *testing.T) {
	sys, st := newSystem(t, "")
	st.Freeze = false
	an := NewAnimator(sys, 1)
	for range 10 {
		an.Step(st)
	}
	pos := sys.Scene.Camera.Pose.Pos
	assert.InDelta(t, 200.1, pos.X, 1e-3)
	assert.InDelta(t, 29.9, pos.Y, 1e-3)
	assert.InDelta(t, 99.5, pos.Z, 1e-3)
}

func TestFreezeMoonsOnly(t *testing.T) {
	sys, st := newSystem(t, "")
	st.Freeze = false
	st.FreezeMoons = true
	an := NewAnimator(sys, 1)
	saturn := sys.Planet("saturn")
	before := saturn.Moons[0].Pivot.Pose.Quat
	an.Step(st)
	assert.Equal(t, before, saturn.Moons[0].Pivot.Pose.Quat)
	assert.NotEqual(t, math32.Quat{W: 1}, saturn.Pivot.Pose.Quat)
}

func TestStepLight(t *testing.T) {
	sys, st := newSystem(t, "")
	st.Intensity = 3.5
	st.Penumbra = 0.25
	NewAnimator(sys, 1).Step(st)
	assert.Equal(t, float32(3.5), sys.Light.Intensity)
	assert.Equal(t, float32(0.25), sys.Light.Penumbra)
}

func TestAxisToggle(t *testing.T) {
	sys, st := newSystem(t, "")
	p := controls.NewPanel(st)
	sys.Bind(p)

	require.NoError(t, p.Set("axis", "false"))
	for _, n := range sys.Axes.Nodes() {
		assert.False(t, n.AsNodeBase().Visible)
	}

	late := scene.NewSolid(sys.Scene.Root, "late.orbit", scene.NewRing("late", 1, 1.1, 8))
	sys.Axes.Add(late)
	assert.False(t, late.Visible, "added after the toggle")

	require.NoError(t, p.Set("axis", "true"))
	for _, n := range sys.Axes.Nodes() {
		assert.True(t, n.AsNodeBase().Visible)
	}
	assert.True(t, late.Visible)
}

func TestRingHalves(t *testing.T) {
	sys, _ := newSystem(t, "")
	saturn := sys.Planet("saturn")
	require.Len(t, saturn.Rings, 2)
	up, down := saturn.Rings[0], saturn.Rings[1]
	assert.Equal(t, saturn.Mesh.Parent(), up.Parent())
	assert.Equal(t, saturn.Pivot, down.Parent())
	assert.Equal(t, up.Mesh, down.Mesh)
	assert.Equal(t, float32(889), up.Pose.Pos.X)
	assert.Equal(t, float32(889), down.Pose.Pos.X)

	var want math32.Quat
	want.SetFromEuler(math32.Vec3(-0.5*math32.Pi, -0.1*math32.Pi, 0))
	assertQuat(t, want, up.Pose.Quat)
	want.SetFromEuler(math32.Vec3(-0.5*math32.Pi, 0.9*math32.Pi, math32.Pi))
	assertQuat(t, want, down.Pose.Quat)

	rings := 0
	scene.WalkSolids(sys.Scene.Root, func(sld *scene.Solid) {
		if strings.Contains(sld.Name, ".ring") {
			rings++
		}
	})
	assert.Equal(t, 2, rings)
	for _, pl := range sys.Planets {
		if pl != saturn {
			assert.Empty(t, pl.Rings, pl.Name)
		}
	}
}

func TestBind(t *testing.T) {
	sys, st := newSystem(t, "")
	p := controls.NewPanel(st)
	sys.Bind(p)

	require.NoError(t, p.Set("wireframe", "true"))
	for _, bd := range sys.Bodies() {
		assert.True(t, bd.Mesh.Material.Wireframe, bd.Name)
	}
	require.NoError(t, p.Set("ring", "false"))
	for _, rg := range sys.Planet("saturn").Rings {
		assert.False(t, rg.Visible)
	}
	require.NoError(t, p.Set("lightsource", "#ff0000"))
	assert.Equal(t, uint8(255), sys.Light.Color.R)
	assert.Equal(t, uint8(0), sys.Light.Color.G)

	sys.SetLightColor("#zzzzzz")
	assert.Equal(t, uint8(255), sys.Light.Color.R, "invalid colors leave the light unchanged")
	assert.Error(t, p.Set("lightsource", "#0000zz"))
	assert.Equal(t, uint8(255), sys.Light.Color.R)
}

func TestLoadFailureLeavesPlaceholders(t *testing.T) {
	sys, st := newSystem(t, "")
	q := &frame.Queue{}
	ld := loader.NewLoader(q, 8)
	sys.LoadScripted(ld, randx.NewSysRand(1))
	ld.Wait()
	q.Drain()

	all := append([]*Scripted{sys.Spaceship, sys.Satellite, sys.Hubble}, sys.Voyagers...)
	all = append(all, sys.Meteorites...)
	require.Len(t, all, 3+3+NumMeteorites)
	for _, so := range all {
		assert.False(t, so.Loaded(), so.Name)
		assert.Error(t, so.Err, so.Name)
		assert.Nil(t, so.Node.Parent(), so.Name)
	}

	st.Freeze = false
	an := NewAnimator(sys, 1)
	for range 20 {
		an.Step(st)
	}
	for _, so := range all {
		assert.Equal(t, math32.Vector3{}, so.Node.Pose.Pos, so.Name)
		assert.Equal(t, math32.Quat{W: 1}, so.Node.Pose.Quat, so.Name)
		assert.False(t, sys.Scene.Contains(so.Node), so.Name)
	}

	r := render.NewRaster(image.Pt(64, 48))
	assert.NoError(t, r.Render(sys.Scene))
}

const triOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func TestLoadScripted(t *testing.T) {
	assets := t.TempDir()
	models := filepath.Join(assets, "models")
	require.NoError(t, os.MkdirAll(models, 0o755))
	for _, fn := range []string{"spaceship1.obj", "spaceship2.obj", "metiorite.obj"} {
		require.NoError(t, os.WriteFile(filepath.Join(models, fn), []byte(triOBJ), 0o644))
	}

	sys, st := newSystem(t, assets)
	q := &frame.Queue{}
	ld := loader.NewLoader(q, 4)
	sys.LoadScripted(ld, randx.NewSysRand(42))
	ld.Wait()
	assert.False(t, sys.Spaceship.Loaded(), "placed on the frame goroutine")
	q.Drain()

	sp := sys.Spaceship
	require.True(t, sp.Loaded())
	assert.Equal(t, 1.0, sp.Progress())
	assert.Equal(t, sys.Scene.Root, sp.Node.Parent())
	assert.Equal(t, math32.Vec3(-140, 40, 50), sp.Node.Pose.Pos)
	assert.Equal(t, math32.Vec3(3, 3, 3), sp.Node.Pose.Scale)
	assert.False(t, sys.Hubble.Loaded())

	require.Len(t, sys.Meteorites, NumMeteorites)
	for _, mt := range sys.Meteorites {
		require.True(t, mt.Loaded())
		assert.GreaterOrEqual(t, mt.Node.Pose.Scale.X, float32(0))
		assert.Less(t, mt.Node.Pose.Scale.X, float32(0.01))
		for _, c := range []float32{mt.Node.Pose.Pos.X, mt.Node.Pose.Pos.Y, mt.Node.Pose.Pos.Z} {
			assert.GreaterOrEqual(t, c, float32(-3001))
			assert.LessOrEqual(t, c, float32(-1))
		}
	}

	st.Freeze = false
	NewAnimator(sys, 7).Step(st)
	assert.InDelta(t, -139.9, sp.Node.Pose.Pos.X, 1e-4)
	earth := sys.Planet("earth")
	assert.Equal(t, earth.Pivot, sys.Satellite.Node.Parent())
	assert.Equal(t, math32.Vec3(103, 10, 5), sys.Satellite.Node.Pose.Pos)
	for _, mt := range sys.Meteorites {
		q := mt.Node.Pose.Quat
		angle := 2 * math.Asin(float64(q.Y))
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, 0.01+1e-6)
	}

	st.Freeze = true
	NewAnimator(sys, 7).Step(st)
	assert.InDelta(t, -139.9, sp.Node.Pose.Pos.X, 1e-4)
}

// writeGLB writes a one-triangle binary glTF model.
func writeGLB(t *testing.T, fn string) {
	doc := &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0"},
		Scenes: []*gltf.Scene{{Nodes: []uint32{0}}},
		Nodes:  []*gltf.Node{{Name: "body", Mesh: gltf.Index(0)}},
		Meshes: []*gltf.Mesh{{Name: "body", Primitives: []*gltf.Primitive{
			{Attributes: gltf.Attribute{gltf.POSITION: 0}},
		}}},
		Accessors: []*gltf.Accessor{{ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 3}},
	}
	f, err := os.Create(fn)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gltf.NewEncoder(f).Encode(doc))
}

func TestLoadScriptedGLB(t *testing.T) {
	assets := t.TempDir()
	dir := filepath.Join(assets, "assets")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeGLB(t, filepath.Join(dir, "Hubble.glb"))
	writeGLB(t, filepath.Join(dir, "Voyager.glb"))

	sys, st := newSystem(t, assets)
	q := &frame.Queue{}
	ld := loader.NewLoader(q, 4)
	sys.LoadScripted(ld, randx.NewSysRand(5))
	ld.Wait()
	q.Drain()

	earth := sys.Planet("earth")
	hb := sys.Hubble
	require.True(t, hb.Loaded())
	require.NoError(t, hb.Err)
	assert.Equal(t, sys.Scene.Root, hb.Node.Parent())
	assert.Equal(t, math32.Vec3(103, 4, 0), hb.Node.Pose.Pos)
	assert.Equal(t, math32.Vec3(0.1, 0.1, 0.1), hb.Node.Pose.Scale)
	want := scene.NewGroup(nil, "want")
	want.SetEulerRotationRad(0.5*math32.Pi, 0.1*math32.Pi, 0.5*math32.Pi)
	assertQuat(t, want.Pose.Quat, hb.Node.Pose.Quat)

	require.Len(t, sys.Voyagers, len(voyagerPlacements))
	for i, vg := range sys.Voyagers {
		pc := voyagerPlacements[i]
		require.True(t, vg.Loaded(), vg.Name)
		assert.Equal(t, earth.Mesh, vg.Node.Parent(), vg.Name)
		assert.Equal(t, math32.Vec3(pc[0], pc[1], pc[2]), vg.Node.Pose.Pos, vg.Name)
		require.Len(t, vg.Node.Children(), 1)
		model := vg.Node.Children()[0].(*scene.Group)
		assert.Equal(t, math32.Vec3(0.1, 0.1, 0.1), model.Pose.Scale, vg.Name)
		want.SetEulerRotationRad(pc[4]*math32.Pi, pc[5]*math32.Pi, pc[3]*math32.Pi)
		assertQuat(t, want.Pose.Quat, model.Pose.Quat)
	}

	st.Freeze = true
	NewAnimator(sys, 1).Step(st)
	assert.Equal(t, sys.Scene.Root, hb.Node.Parent(), "frozen frames do not reparent")

	st.Freeze = false
	NewAnimator(sys, 1).Step(st)
	assert.Equal(t, earth.Pivot, hb.Node.Parent())
	assert.Equal(t, math32.Vec3(103, 4, 0), hb.Node.Pose.Pos)
	assert.False(t, sys.Spaceship.Loaded())
	assert.Equal(t, earth.Mesh, sys.Voyagers[0].Node.Parent())
}

func TestMeteoritesReproducible(t *testing.T) {
	place := func() []math32.Vector3 {
		assets := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(assets, "models"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(assets, "models", "metiorite.obj"), []byte(triOBJ), 0o644))
		sys, _ := newSystem(t, assets)
		q := &frame.Queue{}
		ld := loader.NewLoader(q, 4)
		sys.LoadScripted(ld, randx.NewSysRand(3))
		ld.Wait()
		q.Drain()
		var ps []math32.Vector3
		for _, mt := range sys.Meteorites {
			ps = append(ps, mt.Node.Pose.Pos)
		}
		return ps
	}
	assert.Equal(t, place(), place())
}

func TestCatalogFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "catalog.yaml")
	cat := DefaultCatalog()
	require.NoError(t, cat.Save(fn))
	back, err := OpenCatalog(fn)
	require.NoError(t, err)
	assert.Equal(t, cat, back)

	_, err = OpenCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
