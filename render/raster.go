// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"image"
	"image/color"
	"sort"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"cogentcore.org/solarsys/scene"
	"golang.org/x/image/draw"
)

// Raster is a headless software [Engine]. Spheres and model bounds are
// drawn as projected discs, rings and axes as projected point samples,
// back to front.
type Raster struct {

	// Image is the most recently rendered frame.
	Image *image.RGBA

	// Frames counts completed renders.
	Frames int

	// SizeChanges counts calls to SetSize that changed the size.
	SizeChanges int

	size image.Point
	bg   *image.RGBA
	bgOf *scene.Texture
}

// NewRaster returns a raster engine with the given output size.
func NewRaster(sz image.Point) *Raster {
	r := &Raster{}
	r.SetSize(sz)
	return r
}

func (r *Raster) Size() image.Point {
	return r.size
}

func (r *Raster) SetSize(sz image.Point) {
	if sz == r.size {
		return
	}
	r.size = sz
	r.SizeChanges++
	r.Image = image.NewRGBA(image.Rectangle{Max: sz})
	r.bg = nil
}

// Save writes the last frame to the given file, with the format taken
// from the extension.
func (r *Raster) Save(filename string) error {
	if r.Image == nil {
		return errors.New("render.Raster: nothing rendered yet")
	}
	return imagex.Save(r.Image, filename)
}

// item is one solid queued for drawing.
type item struct {
	sld   *scene.Solid
	depth float32
}

func (r *Raster) Render(sc *scene.Scene) error {
	if r.size.X <= 0 || r.size.Y <= 0 {
		return errors.New("render.Raster: output size is empty")
	}
	r.drawBackground(sc)
	sc.UpdateWorld()
	vp := sc.Camera.ViewProjection()

	var items []item
	for _, sld := range sc.Solids() {
		if sld.Mesh == nil {
			continue
		}
		c := sld.Mesh.AsMeshBase().Center().MulMatrix4(&sld.Pose.WorldMatrix)
		ndc, ok := scene.Project(&vp, c)
		if !ok {
			if _, flat := sld.Mesh.(*scene.Ring); !flat {
				continue
			}
		}
		items = append(items, item{sld: sld, depth: ndc.Z})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].depth > items[j].depth
	})
	lt := collectLights(sc)
	for _, it := range items {
		r.drawSolid(sc, &vp, lt, it.sld)
	}
	r.Frames++
	return nil
}

func (r *Raster) drawBackground(sc *scene.Scene) {
	dst := r.Image
	if sc.Background != nil {
		if r.bg == nil || r.bgOf != sc.Background {
			if src := sc.Background.Image(); src != nil {
				r.bg = image.NewRGBA(dst.Bounds())
				draw.ApproxBiLinear.Scale(r.bg, r.bg.Bounds(), src, src.Bounds(), draw.Src, nil)
				r.bgOf = sc.Background
			}
		}
		if r.bg != nil && r.bgOf == sc.Background {
			copy(dst.Pix, r.bg.Pix)
			return
		}
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sc.BackgroundColor), image.Point{}, draw.Src)
}

// toPixel converts normalized device coordinates to pixel coordinates.
func (r *Raster) toPixel(ndc math32.Vector3) (float32, float32) {
	return (ndc.X + 1) / 2 * float32(r.size.X), (1 - ndc.Y) / 2 * float32(r.size.Y)
}

// pixelRadius returns the on-screen radius of a sphere of world radius
// rad centered at c.
func (r *Raster) pixelRadius(cam *scene.Camera, c math32.Vector3, rad float32) float32 {
	dist := c.Sub(cam.Pose.Pos).Length()
	if dist <= 0 {
		return 0
	}
	half := math32.Tan(math32.DegToRad(cam.FOV) / 2)
	return rad / (dist * half) * float32(r.size.Y) / 2
}

// worldScale returns the largest scale factor of a world matrix.
func worldScale(m *math32.Matrix4) float32 {
	sx := math32.Vec3(m[0], m[1], m[2]).Length()
	sy := math32.Vec3(m[4], m[5], m[6]).Length()
	sz := math32.Vec3(m[8], m[9], m[10]).Length()
	return math32.Max(sx, math32.Max(sy, sz))
}

func (r *Raster) drawSolid(sc *scene.Scene, vp *math32.Matrix4, lt *lighting, sld *scene.Solid) {
	wm := &sld.Pose.WorldMatrix
	mb := sld.Mesh.AsMeshBase()
	center := mb.Center().MulMatrix4(wm)
	clr := shade(&sld.Material, lt, center)
	if !sld.Material.Transparent {
		clr.A = 255
	}
	switch ms := sld.Mesh.(type) {
	case *scene.Sphere:
		r.drawBall(sc, vp, center, ms.Radius*worldScale(wm), clr, sld.Material.Wireframe)
	case *scene.Model:
		r.drawBall(sc, vp, center, mb.Extent()*worldScale(wm), clr, sld.Material.Wireframe)
	case *scene.Ring:
		r.drawRing(vp, wm, ms, clr)
	case *scene.Axes:
		r.drawAxes(vp, wm, ms.Size)
	}
}

// drawBall fills or outlines a projected disc. Work is bounded by the
// visible rows and columns, so a body filling the view costs no more
// than one pass over the image.
func (r *Raster) drawBall(sc *scene.Scene, vp *math32.Matrix4, c math32.Vector3, rad float32, clr color.RGBA, wire bool) {
	ndc, ok := scene.Project(vp, c)
	if !ok {
		return
	}
	px, py := r.toPixel(ndc)
	pr := math32.Max(r.pixelRadius(&sc.Camera, c, rad), 0.5)
	w, h := float32(r.size.X), float32(r.size.Y)
	if px+pr < 0 || py+pr < 0 || px-pr >= w || py-pr >= h {
		return
	}
	y0, y1 := clampPixel(py-pr, r.size.Y), clampPixel(py+pr, r.size.Y)
	for y := y0; y <= y1; y++ {
		dy := float32(y) + 0.5 - py
		if dy*dy > pr*pr {
			continue
		}
		dx := math32.Sqrt(pr*pr - dy*dy)
		if wire {
			r.plot(px-dx, float32(y), clr)
			r.plot(px+dx, float32(y), clr)
			continue
		}
		x0, x1 := clampPixel(px-dx, r.size.X), clampPixel(px+dx, r.size.X)
		for x := x0; x <= x1; x++ {
			r.set(x, y, clr)
		}
	}
	if !wire {
		return
	}
	// columns fill the steep parts of the outline
	x0, x1 := clampPixel(px-pr, r.size.X), clampPixel(px+pr, r.size.X)
	for x := x0; x <= x1; x++ {
		dx := float32(x) + 0.5 - px
		if dx*dx > pr*pr {
			continue
		}
		dy := math32.Sqrt(pr*pr - dx*dx)
		r.plot(float32(x), py-dy, clr)
		r.plot(float32(x), py+dy, clr)
	}
}

// clampPixel converts v to a pixel index in [0, n).
func clampPixel(v float32, n int) int {
	switch {
	case v < 0:
		return 0
	case v >= float32(n):
		return n - 1
	}
	return int(v)
}

func (r *Raster) drawRing(vp *math32.Matrix4, wm *math32.Matrix4, rg *scene.Ring, clr color.RGBA) {
	n := rg.Segments
	if n < 8 {
		n = 8
	}
	bands := 1
	if rg.Outer-rg.Inner > 1 {
		bands = 4
	}
	for b := 0; b < bands; b++ {
		rad := rg.Inner
		if bands > 1 {
			rad += (rg.Outer - rg.Inner) * float32(b) / float32(bands-1)
		}
		for i := 0; i < n*4; i++ {
			a := 2 * math32.Pi * float32(i) / float32(n*4)
			p := math32.Vec3(rad*math32.Cos(a), rad*math32.Sin(a), 0).MulMatrix4(wm)
			if ndc, ok := scene.Project(vp, p); ok {
				x, y := r.toPixel(ndc)
				r.plot(x, y, clr)
			}
		}
	}
}

var axisColors = [3]color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}

func (r *Raster) drawAxes(vp *math32.Matrix4, wm *math32.Matrix4, size float32) {
	const steps = 64
	for ax := 0; ax < 3; ax++ {
		for i := 0; i <= steps; i++ {
			d := size * float32(i) / steps
			var p math32.Vector3
			switch ax {
			case 0:
				p.X = d
			case 1:
				p.Y = d
			default:
				p.Z = d
			}
			if ndc, ok := scene.Project(vp, p.MulMatrix4(wm)); ok {
				x, y := r.toPixel(ndc)
				r.plot(x, y, axisColors[ax])
			}
		}
	}
}

func (r *Raster) plot(x, y float32, clr color.RGBA) {
	r.set(int(x), int(y), clr)
}

// set paints one pixel, blending clr over the existing pixel when it
// is not opaque.
func (r *Raster) set(x, y int, clr color.RGBA) {
	if x < 0 || y < 0 || x >= r.size.X || y >= r.size.Y {
		return
	}
	if clr.A == 255 {
		r.Image.SetRGBA(x, y, clr)
		return
	}
	r.Image.SetRGBA(x, y, over(clr, r.Image.RGBAAt(x, y)))
}

// over composites the premultiplied color src over dst.
func over(src, dst color.RGBA) color.RGBA {
	k := 255 - uint32(src.A)
	ch := func(s, d uint8) uint8 {
		v := uint32(s) + uint32(d)*k/255
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{ch(src.R, dst.R), ch(src.G, dst.G), ch(src.B, dst.B), ch(src.A, dst.A)}
}
