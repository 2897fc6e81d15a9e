// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsys/controls"
)

// Animator advances a [System] by one frame per call to Step.
type Animator struct {
	Sys *System

	// Rand provides the meteorite spin increments.
	Rand randx.Rand

	// Frames counts the calls to Step.
	Frames int
}

// NewAnimator returns an animator for sys with meteorite spins drawn
// from a generator seeded with seed.
func NewAnimator(sys *System, seed int64) *Animator {
	return &Animator{Sys: sys, Rand: randx.NewSysRand(seed)}
}

// Step applies one frame of motion. Each angular increment is the base
// rate of the node plus st.Speed. The freeze flags gate independently:
// Freeze stops orbits, spacecraft and camera drift; FreezePlanets stops
// self-rotation; FreezeMoons stops moon orbits.
func (an *Animator) Step(st *controls.State) {
	sys := an.Sys
	speed := float32(st.Speed)
	an.Frames++

	if !st.Freeze {
		for _, pl := range sys.Planets {
			pl.Pivot.RotateY(pl.Orbit + speed)
			for _, mn := range pl.Moons {
				if mn.Carrier != 0 {
					mn.Pivot.RotateY(mn.Carrier + speed)
				}
			}
		}
		if sp := sys.Spaceship; sp != nil && sp.Loaded() {
			sp.Node.Pose.Pos.X += 0.1
		}
		if earth := sys.Planet("earth"); earth != nil {
			for _, so := range []*Scripted{sys.Hubble, sys.Satellite} {
				if so != nil && so.Loaded() {
					earth.Pivot.AddChild(so.Node)
				}
			}
		}
		cam := &sys.Scene.Camera
		cam.Pose.Pos = cam.Pose.Pos.Add(sys.Drift)
	}

	if !st.FreezePlanets {
		sys.Sun.Mesh.RotateY(sys.Sun.Spin + speed)
		for _, pl := range sys.Planets {
			pl.Mesh.RotateY(pl.Spin + speed)
			if pl.Clouds != nil && pl.CloudSpin != 0 {
				pl.Clouds.RotateY(pl.CloudSpin + speed)
			}
			for _, mn := range pl.Moons {
				mn.Mesh.RotateY(mn.Spin + speed)
			}
		}
	}

	if !st.FreezeMoons {
		for _, pl := range sys.Planets {
			for _, mn := range pl.Moons {
				mn.Pivot.RotateY(mn.Orbit + speed)
			}
		}
	}

	for _, mt := range sys.Meteorites {
		if mt.Loaded() {
			mt.Node.RotateY(float32(an.Rand.Float64() / 100))
		}
	}

	sys.Light.Intensity = float32(st.Intensity)
	sys.Light.Penumbra = float32(st.Penumbra)
}
