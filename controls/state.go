// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controls holds the live-editable control state of the
// visualization and the panel that binds named fields to it.
package controls

import (
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
	"github.com/pelletier/go-toml/v2"
)

// State is the set of toggles and sliders read by every frame. It is
// passed by reference to the animation step rather than held globally.
type State struct {

	// LightSource is the point light color as a hex string.
	LightSource string `default:"#ffffff" toml:"lightsource"`

	// Wireframe renders the star, planets and moons as outlines.
	Wireframe bool `toml:"wireframe"`

	// Axis shows the orbit indicator rings.
	Axis bool `default:"true" toml:"axis"`

	// Ring shows planetary rings.
	Ring bool `default:"true" toml:"ring"`

	// Freeze stops orbital motion, camera drift and spacecraft translation.
	Freeze bool `default:"true" toml:"freeze"`

	// FreezePlanets stops self-rotation of the star, planets and moons.
	FreezePlanets bool `toml:"freeze_planets"`

	// FreezeMoons stops moons orbiting their planets.
	FreezeMoons bool `toml:"freeze_moons"`

	// Speed is added to every angular increment.
	Speed float64 `default:"0.001" min:"0" max:"0.01" toml:"speed"`

	// Penumbra is applied to the point light every frame.
	Penumbra float64 `default:"0.001" min:"0" max:"1" toml:"penumbra"`

	// Intensity is applied to the point light every frame.
	Intensity float64 `default:"1" min:"0" max:"5" toml:"intensity"`
}

// NewState returns a State with default values.
func NewState() *State {
	st := &State{}
	errors.Log(reflectx.SetFromDefaultTags(st))
	return st
}

// Open reads the state from a TOML file; missing keys keep their values.
func (st *State) Open(filename string) error {
	return tomlx.Open(st, filename)
}

// Save writes the state to a TOML file.
func (st *State) Save(filename string) error {
	return tomlx.Save(st, filename)
}

// Dump writes the state as TOML to stdout.
func (st *State) Dump() error {
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}
