// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"log/slog"
	"path/filepath"
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsys/loader"
	"cogentcore.org/solarsys/scene"
)

// NumMeteorites is the size of the meteorite field.
const NumMeteorites = 100

// Scripted is an externally authored model that is loaded in the
// background. Until the load completes, Node is an empty detached
// placeholder group with a default pose; if the load fails it stays
// that way.
type Scripted struct {
	Name string

	// File is the model path relative to the assets directory.
	File string

	// Node is the placeholder, replaced by the model once loaded.
	Node *scene.Group

	// Err is the load error, if any.
	Err error

	loaded   bool
	progress float64
}

// Loaded reports whether Node is the loaded model.
func (so *Scripted) Loaded() bool {
	return so.loaded
}

// Progress returns the fraction of the file loaded so far.
func (so *Scripted) Progress() float64 {
	return so.progress
}

// voyagerPlacements are the parent positions (x, y, z) and model
// rotations (z, x, y, in units of pi) of the Voyager replicas.
var voyagerPlacements = [][6]float32{
	{10, 0, 0, 0.5, 0.5, 0},
	{-5, 0, 10, -2.80, 2.61, 0},
	{-5, 0, -10, -0.217, 0.5, 0.1},
}

// request starts loading file. On success, place receives the model on
// the frame goroutine and returns the node that replaces the placeholder.
func (sys *System) request(ld *loader.Loader, name, file string, place func(model *scene.Group) *scene.Group) *Scripted {
	so := &Scripted{Name: name, File: file, Node: scene.NewGroup(nil, name)}
	ld.Load(filepath.Join(sys.Assets, file), loader.Callbacks{
		OnLoad: func(model *scene.Group) {
			so.Node = place(model)
			so.loaded = true
		},
		OnProgress: func(fraction float64) {
			so.progress = fraction
			slog.Debug("solar: loading", "name", name, "percent", fraction*100)
		},
		OnError: func(err error) {
			so.Err = err
		},
	})
	return so
}

// setTexture applies tx to every solid of the model.
func setTexture(model *scene.Group, tx *scene.Texture) {
	scene.WalkSolids(model, func(sld *scene.Solid) {
		sld.SetTexture(tx)
	})
}

// LoadScripted requests the spacecraft, the telescope, the Voyager
// replicas and the meteorite field. It returns immediately; models are
// placed as their loads complete, in any order. Meteorite sizes and
// positions are drawn from rnd up front, so they do not depend on the
// completion order.
func (sys *System) LoadScripted(ld *loader.Loader, rnd randx.Rand) {
	metal1 := sys.texture("metal1.jpg")
	metal3 := sys.texture("metal3.jpg")
	rock := sys.texture("meteorite.webp")

	sys.Spaceship = sys.request(ld, "spaceship", "models/spaceship1.obj", func(model *scene.Group) *scene.Group {
		model.SetScale(3, 3, 3)
		setTexture(model, metal1)
		sys.Scene.Add(model)
		model.SetPos(-140, 40, 50)
		return model
	})

	sys.Satellite = sys.request(ld, "satellite", "models/spaceship2.obj", func(model *scene.Group) *scene.Group {
		model.SetScale(1, 1, 1)
		setTexture(model, metal3)
		sys.Scene.Add(model)
		model.SetPos(103, 10, 5)
		model.SetEulerRotationRad(0, -0.5*math32.Pi, 0)
		return model
	})

	sys.Hubble = sys.request(ld, "hubble", "assets/Hubble.glb", func(model *scene.Group) *scene.Group {
		model.SetScale(0.1, 0.1, 0.1)
		setTexture(model, metal3)
		sys.Scene.Add(model)
		model.SetPos(103, 4, 0)
		model.SetEulerRotationRad(0.5*math32.Pi, 0.1*math32.Pi, 0.5*math32.Pi)
		return model
	})

	sys.Voyagers = nil
	if earth := sys.Planet("earth"); earth != nil {
		for i, pc := range voyagerPlacements {
			vg := sys.request(ld, "voyager"+strconv.Itoa(i+1), "assets/Voyager.glb", func(model *scene.Group) *scene.Group {
				model.SetScale(0.1, 0.1, 0.1)
				setTexture(model, metal1)
				carrier := scene.NewGroup(nil, model.Name+".carrier")
				carrier.AddChild(model)
				carrier.SetPos(pc[0], pc[1], pc[2])
				model.SetEulerRotationRad(pc[4]*math32.Pi, pc[5]*math32.Pi, pc[3]*math32.Pi)
				earth.Mesh.AddChild(carrier)
				return carrier
			})
			sys.Voyagers = append(sys.Voyagers, vg)
		}
	}

	sys.Meteorites = nil
	for range NumMeteorites {
		scale := float32(rnd.Float64() / 100)
		x := float32(-3001 + rnd.Intn(3001))
		y := float32(-3001 + rnd.Intn(3001))
		z := float32(-3001 + rnd.Intn(3001))
		sys.Meteorites = append(sys.Meteorites, sys.request(ld, "meteorite", "models/metiorite.obj", func(model *scene.Group) *scene.Group {
			model.SetScale(scale, scale, scale)
			setTexture(model, rock)
			sys.Scene.Add(model)
			model.SetPos(x, y, z)
			return model
		}))
	}
}
