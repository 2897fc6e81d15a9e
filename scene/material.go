// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Material describes the material properties of a surface (colors, texture, etc).
type Material struct {

	// Color is the main color of surface, used when there is no usable texture.
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting.
	Emissive color.RGBA

	// Unlit surfaces ignore lights entirely (a "basic" material).
	Unlit bool

	// Transparent marks surfaces that must be blended over what is behind them.
	Transparent bool

	// DoubleSided renders both faces.
	DoubleSided bool

	// Wireframe renders the outline only.
	Wireframe bool

	// Texture provides the color for the surface, if set and loadable.
	Texture *Texture
}

// Defaults sets default material values.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Emissive = color.RGBA{}
}

// SurfaceColor returns the average texture color when the texture is
// available, and Color otherwise.
func (mt *Material) SurfaceColor() color.RGBA {
	if mt.Texture != nil {
		if avg, ok := mt.Texture.Average(); ok {
			return avg
		}
	}
	return mt.Color
}
