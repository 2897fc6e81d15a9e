// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solar builds the solar system scene hierarchy and advances
// it once per frame.
//
// Every body is a mesh owned by a pivot group. Planet pivots sit at the
// scene root and moon pivots sit under the mesh of their planet, so a
// moon follows its planet through pure hierarchical composition of
// local rotations:
//
//	root
//	├── sun
//	└── earth.pivot
//	    ├── earth.orbit        (indicator)
//	    ├── earth.clouds
//	    └── earth              (mesh at x = distance)
//	        ├── moon.orbit     (indicator)
//	        └── moon.pivot
//	            └── moon       (mesh at x = distance)
package solar

import (
	"image/color"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/solarsys/controls"
	"cogentcore.org/solarsys/scene"
)

// Sphere tessellation, as passed to the rendering engine.
const (
	starSegments  = 30
	bodySegments  = 64
	ringSegments  = 64
	orbitSegments = 100
)

// Body is a star, planet or moon.
type Body struct {
	Name string

	// Pivot carries the orbital rotation; nil for the star.
	Pivot *scene.Group

	// Mesh is the visible sphere, at the orbital distance from Pivot.
	Mesh *scene.Solid

	// Clouds is an optional shell beside Mesh under Pivot.
	Clouds *scene.Solid

	// Rings holds the two ring halves, under Pivot.
	Rings []*scene.Solid

	// Indicator is the orbit ring, nil for the star.
	Indicator *scene.Solid

	Moons []*Body

	Orbit, Spin, CloudSpin, Carrier float32
}

// System is a built solar system scene.
type System struct {
	Scene *scene.Scene

	// Assets is the directory holding img/, models/ and assets/.
	Assets string

	Sun     *Body
	Planets []*Body

	// Axes holds the orbit indicators.
	Axes *AxisSet

	// Helper is the scene axes helper.
	Helper *scene.Solid

	Ambient *scene.AmbientLight
	Light   *scene.PointLight

	// Drift is the camera translation per unfrozen frame.
	Drift math32.Vector3

	// Scripted objects, filled by [System.LoadScripted].
	Spaceship  *Scripted
	Satellite  *Scripted
	Hubble     *Scripted
	Voyagers   []*Scripted
	Meteorites []*Scripted
}

// Build adds the bodies of cat, the lights, the camera and the axes
// helper to sc. Textures are looked up under assets/img. The initial
// toggles are taken from st.
func Build(sc *scene.Scene, cat *Catalog, assets string, st *controls.State) *System {
	sys := &System{Scene: sc, Assets: assets, Axes: NewAxisSet(st.Axis)}
	sys.Drift = math32.Vec3(cat.Drift[0], cat.Drift[1], cat.Drift[2])

	if cat.Background != "" {
		sc.Background = sys.texture(cat.Background)
	}

	sun := &Body{Name: cat.Star.Name, Spin: cat.Star.Spin}
	sun.Mesh = scene.NewSolid(sc.Root, cat.Star.Name, scene.NewSphere(cat.Star.Name, cat.Star.Radius, starSegments))
	sun.Mesh.SetTexture(sys.texture(cat.Star.Texture)).SetShadows(true, false)
	sun.Mesh.Material.Unlit = true
	sys.Sun = sun

	for i := range cat.Planets {
		sys.Planets = append(sys.Planets, sys.addPlanet(&cat.Planets[i]))
	}

	sys.Ambient = scene.NewAmbientLight(sc, "ambient", 1, colors.FromRGB(0x33, 0x33, 0x33))
	sys.Light = scene.NewPointLight(sc, "point", 2, 1000, colors.FromRGB(255, 255, 255))
	sys.Light.CastShadow = true
	sys.Light.ShadowNear = 20
	sys.Light.ShadowFar = 100

	cam := &sc.Camera
	cam.FOV = 45
	cam.Near = 0.1
	cam.Far = 1000000
	cam.Pose.Pos = math32.Vec3(cat.Camera[0], cat.Camera[1], cat.Camera[2])
	cam.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))

	if cat.AxesSize > 0 {
		sys.Helper = scene.NewSolid(sc.Root, "axes", scene.NewAxes("axes", cat.AxesSize))
		sys.Helper.Material.Unlit = true
	}

	sys.SetWireframe(st.Wireframe)
	sys.SetRingsVisible(st.Ring)
	sys.SetLightColor(st.LightSource)
	return sys
}

// texture returns the shared texture for an image file under img/.
func (sys *System) texture(file string) *scene.Texture {
	if file == "" {
		return nil
	}
	return sys.Scene.Texture(file, filepath.Join(sys.Assets, "img", file))
}

// orbitIndicator returns a thin white ring of the given radius.
func orbitIndicator(parent scene.Node, name string, radius float32) *scene.Solid {
	ind := scene.NewSolid(parent, name, scene.NewRing(name, radius, radius+0.1, orbitSegments))
	ind.SetColor(color.RGBA{255, 255, 255, 255})
	ind.Material.DoubleSided = true
	return ind
}

func (sys *System) addPlanet(pl *Planet) *Body {
	bd := &Body{Name: pl.Name, Orbit: pl.Orbit, Spin: pl.Spin}
	bd.Pivot = scene.NewGroup(sys.Scene.Root, pl.Name+".pivot")

	bd.Mesh = scene.NewSolid(bd.Pivot, pl.Name, scene.NewSphere(pl.Name, pl.Radius, bodySegments))
	bd.Mesh.SetTexture(sys.texture(pl.Texture)).SetShadows(true, true).SetPos(pl.Distance, 0, 0)
	bd.Mesh.Material.Transparent = true

	bd.Indicator = orbitIndicator(bd.Pivot, pl.Name+".orbit", pl.Distance)
	bd.Indicator.SetEulerRotationRad(-0.5*math32.Pi, 0, 0)
	sys.Axes.Add(bd.Indicator)

	if rg := pl.Ring; rg != nil {
		tx := sys.texture(rg.Texture)
		// both halves share one mesh and one material
		mesh := scene.NewRing(pl.Name+".ring", rg.Inner, rg.Outer, ringSegments)
		up := scene.NewSolid(bd.Pivot, pl.Name+".ring.up", mesh)
		up.SetTexture(tx).SetShadows(true, true).SetPos(pl.Distance, 0, 0)
		up.SetEulerRotationRad(-0.5*math32.Pi, rg.Up*math32.Pi, 0)
		up.Material.Transparent = true
		down := scene.NewSolid(bd.Pivot, pl.Name+".ring.down", mesh)
		down.SetTexture(tx).SetShadows(true, true).SetPos(pl.Distance, 0, 0)
		down.SetEulerRotationRad(-0.5*math32.Pi, rg.Down*math32.Pi, math32.Pi)
		down.Material.Transparent = true
		bd.Rings = []*scene.Solid{up, down}
	}

	if cl := pl.Clouds; cl != nil {
		bd.CloudSpin = cl.Spin
		bd.Clouds = scene.NewSolid(bd.Pivot, pl.Name+".clouds", scene.NewSphere(pl.Name+".clouds", cl.Radius, bodySegments))
		bd.Clouds.SetTexture(sys.texture(cl.Texture)).SetShadows(true, true).SetPos(pl.Distance, 0, 0)
		bd.Clouds.Material.Transparent = true
	}

	for i := range pl.Moons {
		bd.Moons = append(bd.Moons, sys.addMoon(bd, &pl.Moons[i]))
	}
	return bd
}

func (sys *System) addMoon(planet *Body, mn *Moon) *Body {
	bd := &Body{Name: mn.Name, Orbit: mn.Orbit, Spin: mn.Spin, Carrier: mn.Carrier}
	bd.Pivot = scene.NewGroup(planet.Mesh, mn.Name+".pivot")
	bd.Mesh = scene.NewSolid(bd.Pivot, mn.Name, scene.NewSphere(mn.Name, mn.Radius, bodySegments))
	bd.Mesh.SetTexture(sys.texture(mn.Texture)).SetShadows(true, true).SetPos(mn.Distance, 0, 0)

	bd.Indicator = orbitIndicator(planet.Mesh, mn.Name+".orbit", mn.Distance)
	bd.Indicator.SetEulerRotationRad(mn.Theta*math32.Pi, 0, 0)
	sys.Axes.Add(bd.Indicator)
	return bd
}

// Planet returns the named planet, or nil.
func (sys *System) Planet(name string) *Body {
	for _, bd := range sys.Planets {
		if bd.Name == name {
			return bd
		}
	}
	return nil
}

// Bodies returns the star, planets and moons.
func (sys *System) Bodies() []*Body {
	bds := []*Body{sys.Sun}
	for _, pl := range sys.Planets {
		bds = append(bds, pl)
		bds = append(bds, pl.Moons...)
	}
	return bds
}

// SetWireframe sets the wireframe flag on the star, planets and moons.
func (sys *System) SetWireframe(on bool) {
	for _, bd := range sys.Bodies() {
		bd.Mesh.Material.Wireframe = on
	}
}

// SetRingsVisible shows or hides all planetary rings.
func (sys *System) SetRingsVisible(on bool) {
	for _, pl := range sys.Planets {
		for _, rg := range pl.Rings {
			rg.Visible = on
		}
	}
}

// SetLightColor sets the point light color from a hex string.
// Invalid colors are logged and leave the light unchanged.
func (sys *System) SetLightColor(hex string) {
	clr, err := controls.ParseHex(hex)
	if err != nil {
		slog.Error("solar: invalid light color", "color", hex, "error", err)
		return
	}
	sys.Light.Color = clr
}

// Bind registers the panel callbacks that apply toggles to the scene.
func (sys *System) Bind(p *controls.Panel) {
	st := p.State
	on := func(name string, fn func()) {
		if f, err := p.Field(name); err == nil {
			f.OnChange(fn)
		}
	}
	on("lightsource", func() { sys.SetLightColor(st.LightSource) })
	on("wireframe", func() { sys.SetWireframe(st.Wireframe) })
	on("axis", func() { sys.Axes.SetVisible(st.Axis) })
	on("ring", func() { sys.SetRingsVisible(st.Ring) })
}
