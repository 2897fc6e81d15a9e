// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog lists the bodies of the system with their sizes, orbital
// distances, textures and per-frame angular rates in radians.
type Catalog struct {
	Star    Star     `yaml:"star"`
	Planets []Planet `yaml:"planets"`

	// Background is the texture file drawn behind the scene.
	Background string `yaml:"background"`

	// Camera is the initial camera position; it looks at the origin.
	Camera [3]float32 `yaml:"camera"`

	// Drift is added to the camera position every unfrozen frame.
	Drift [3]float32 `yaml:"drift"`

	// AxesSize is the length of the scene axes helper.
	AxesSize float32 `yaml:"axes_size"`
}

// Star is the central body, which is unlit and only spins.
type Star struct {
	Name    string  `yaml:"name"`
	Radius  float32 `yaml:"radius"`
	Texture string  `yaml:"texture"`
	Spin    float32 `yaml:"spin"`
}

// Planet orbits the star on a pivot at the origin.
type Planet struct {
	Name     string  `yaml:"name"`
	Radius   float32 `yaml:"radius"`
	Texture  string  `yaml:"texture"`
	Distance float32 `yaml:"distance"`

	// Orbit is the pivot rotation per frame; Spin is the self-rotation.
	Orbit float32 `yaml:"orbit"`
	Spin  float32 `yaml:"spin"`

	Ring   *Ring   `yaml:"ring,omitempty"`
	Clouds *Clouds `yaml:"clouds,omitempty"`
	Moons  []Moon  `yaml:"moons,omitempty"`
}

// Ring is drawn as two halves, rotated about Y by Up and Down times pi.
type Ring struct {
	Inner   float32 `yaml:"inner"`
	Outer   float32 `yaml:"outer"`
	Texture string  `yaml:"texture"`
	Up      float32 `yaml:"up"`
	Down    float32 `yaml:"down"`
}

// Clouds is a transparent shell around a planet. A zero Spin leaves it fixed.
type Clouds struct {
	Radius  float32 `yaml:"radius"`
	Texture string  `yaml:"texture"`
	Spin    float32 `yaml:"spin,omitempty"`
}

// Moon orbits a pivot attached to its planet mesh.
type Moon struct {
	Name     string  `yaml:"name"`
	Radius   float32 `yaml:"radius"`
	Texture  string  `yaml:"texture"`
	Distance float32 `yaml:"distance"`

	// Theta tilts the orbit indicator about X, in units of pi.
	Theta float32 `yaml:"theta"`

	Orbit float32 `yaml:"orbit"`
	Spin  float32 `yaml:"spin"`

	// Carrier is an extra pivot rotation applied with planet orbits.
	Carrier float32 `yaml:"carrier,omitempty"`
}

// DefaultCatalog returns the standard system.
func DefaultCatalog() *Catalog {
	saturnMoon := func(name string, r, d, orbit, spin float32) Moon {
		return Moon{Name: name, Radius: r, Texture: name + ".jpg", Distance: d, Theta: 0.5, Orbit: orbit, Spin: spin}
	}
	return &Catalog{
		Star:       Star{Name: "sun", Radius: 20, Texture: "sun.jpg", Spin: 0.0004},
		Background: "stars.jpg",
		Camera:     [3]float32{200, 30, 100},
		Drift:      [3]float32{0.01, -0.01, -0.05},
		AxesSize:   50,
		Planets: []Planet{
			{Name: "mercury", Radius: 2.67, Texture: "mercury.jpg", Distance: 35, Orbit: 0.006, Spin: 0.000006},
			{Name: "venus", Radius: 6.67, Texture: "venus.jpg", Distance: 67, Orbit: 0.0048, Spin: 0.0000036,
				Clouds: &Clouds{Radius: 6.77, Texture: "venus_atmosphere.jpg"}},
			{Name: "earth", Radius: 7, Texture: "earth.jpg", Distance: 93, Orbit: 0.004, Spin: 0.0009,
				Clouds: &Clouds{Radius: 7.1, Texture: "earthclouds.png", Spin: 0.00005},
				Moons: []Moon{{Name: "moon", Radius: 1, Texture: "moon.jpg", Distance: 13, Theta: 0.5,
					Orbit: 0.0017, Spin: 0.0015, Carrier: 0.0004}}},
			{Name: "mars", Radius: 3.66, Texture: "mars.jpg", Distance: 142, Orbit: 0.0032, Spin: 0.00045},
			{Name: "jupiter", Radius: 77.7, Texture: "jupiter.jpg", Distance: 484, Orbit: 0.00172, Spin: 0.02},
			{Name: "saturn", Radius: 64.66, Texture: "saturn.jpg", Distance: 889, Orbit: 0.0012, Spin: 0.004,
				Ring: &Ring{Inner: 66.66, Outer: 103.66, Texture: "small_ring_tex.png", Up: -0.1, Down: 0.9},
				Moons: []Moon{
					saturnMoon("moon1", 3.3, 110, 0.0028, 0.011),
					saturnMoon("moon2", 4.2, 120, 0.0012, 0.0075),
					saturnMoon("moon3", 3, 130, 0.005, 0.0078),
					saturnMoon("moon4", 4.5, 140, 0.002, 0.0032),
				}},
			{Name: "uranus", Radius: 28.11, Texture: "uranus.jpg", Distance: 1790, Orbit: 0.00088, Spin: 0.002},
			{Name: "neptune", Radius: 27.33, Texture: "neptune.jpg", Distance: 2880, Orbit: 0.00072, Spin: 0.001},
		},
	}
}

// OpenCatalog reads a catalog from a YAML file.
func OpenCatalog(filename string) (*Catalog, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cat := &Catalog{}
	if err := yaml.Unmarshal(b, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Save writes the catalog to a YAML file.
func (cat *Catalog) Save(filename string) error {
	b, err := yaml.Marshal(cat)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// Write writes the catalog as YAML to w.
func (cat *Catalog) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return err
	}
	return enc.Close()
}
