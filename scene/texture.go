// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
)

// Texture is an image file used to color surfaces. The image is loaded
// on first use; a load failure is logged once and the texture then
// reports itself unavailable, so materials fall back to their color.
type Texture struct {

	// Name is the name of the texture; textures are shared on the Scene by name.
	Name string

	// File is the image filename.
	File string

	rgba   *image.RGBA
	avg    color.RGBA
	hasAvg bool
	failed bool
}

// NewTexture returns a texture for the given file, not yet loaded.
func NewTexture(name, file string) *Texture {
	return &Texture{Name: name, File: file}
}

// NewTextureImage returns a texture with an already decoded image.
func NewTextureImage(name string, img image.Image) *Texture {
	return &Texture{Name: name, rgba: imagex.AsRGBA(img)}
}

// Image returns the texture image, loading it if needed, or nil if
// the file could not be loaded.
func (tx *Texture) Image() *image.RGBA {
	if tx.rgba != nil || tx.failed {
		return tx.rgba
	}
	if tx.File == "" {
		tx.failed = true
		return nil
	}
	img, _, err := imagex.Open(tx.File)
	if err != nil {
		slog.Error("scene.Texture: image load error", "texture", tx.Name, "file", tx.File, "error", err)
		tx.failed = true
		return nil
	}
	tx.rgba = imagex.AsRGBA(img)
	return tx.rgba
}

// Failed reports whether loading has been attempted and failed.
func (tx *Texture) Failed() bool {
	return tx.failed
}

// Average returns the mean color of the texture, downsampled with a
// box filter, and false if the image is not available.
func (tx *Texture) Average() (color.RGBA, bool) {
	if tx.hasAvg {
		return tx.avg, true
	}
	img := tx.Image()
	if img == nil || img.Bounds().Empty() {
		return color.RGBA{}, false
	}
	px := transform.Resize(img, 1, 1, transform.Box)
	tx.avg = px.RGBAAt(0, 0)
	tx.hasAvg = true
	return tx.avg, true
}
