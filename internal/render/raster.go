/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render provides render backends for the shape primitives: a
// software rasterizer drawing into an RGBA image through an orthographic
// projection, and a Recorder for headless inspection.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xvector "golang.org/x/image/vector"

	"vecdraw/internal/vector"
)

// Raster draws primitives into an in-memory RGBA frame. Device coordinates
// are mapped through the projection set by Begin, the same way an
// orthographic projection maps them onto a GL viewport.
type Raster struct {
	Background color.RGBA
	// LineWidth and PointSize are in image pixels.
	LineWidth float32
	PointSize float32

	img    *image.RGBA
	ras    *xvector.Rasterizer
	proj   vector.Ortho
	filled bool
}

func NewRaster(w, h int) *Raster {
	r := &Raster{Background: vector.Black.RGBA(), LineWidth: 1, PointSize: 1}
	r.Begin(w, h, vector.Unit)
	return r
}

// Begin starts a new frame of the given pixel size, clearing it to the
// background color.
func (r *Raster) Begin(w, h int, proj vector.Ortho) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if r.img == nil || r.img.Bounds().Dx() != w || r.img.Bounds().Dy() != h {
		r.img = image.NewRGBA(image.Rect(0, 0, w, h))
		r.ras = xvector.NewRasterizer(w, h)
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	r.proj = proj
	r.filled = false
}

// Image returns the current frame. It stays owned by the Raster and is
// overwritten by the next Begin.
func (r *Raster) Image() *image.RGBA { return r.img }

// Coverage counts pixels that differ from the background.
func (r *Raster) Coverage() int {
	n := 0
	b := r.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.img.RGBAAt(x, y) != r.Background {
				n++
			}
		}
	}
	return n
}

func (r *Raster) SetPolygonMode(filled bool) { r.filled = filled }

func (r *Raster) Points(c vector.Color, pts ...vector.Pt) {
	h := r.PointSize / 2
	for _, p := range pts {
		x, y := r.project(p)
		r.fill(c, [2]float32{x - h, y - h}, [2]float32{x + h, y - h}, [2]float32{x + h, y + h}, [2]float32{x - h, y + h})
	}
}

func (r *Raster) Lines(c vector.Color, pts ...vector.Pt) {
	for i := 0; i+1 < len(pts); i += 2 {
		r.segment(c, pts[i], pts[i+1])
	}
}

func (r *Raster) Triangles(c vector.Color, pts ...vector.Pt) {
	for i := 0; i+2 < len(pts); i += 3 {
		r.polygon(c, pts[i:i+3])
	}
}

func (r *Raster) Quads(c vector.Color, pts ...vector.Pt) {
	for i := 0; i+3 < len(pts); i += 4 {
		r.polygon(c, pts[i:i+4])
	}
}

func (r *Raster) polygon(c vector.Color, pts []vector.Pt) {
	if !r.filled {
		for i := range pts {
			r.segment(c, pts[i], pts[(i+1)%len(pts)])
		}
		return
	}
	verts := make([][2]float32, len(pts))
	for i, p := range pts {
		x, y := r.project(p)
		verts[i] = [2]float32{x, y}
	}
	r.fill(c, verts...)
}

// segment strokes a line as a thin quad; a zero-length segment becomes a point.
func (r *Raster) segment(c vector.Color, a, b vector.Pt) {
	ax, ay := r.project(a)
	bx, by := r.project(b)
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		r.Points(c, a)
		return
	}
	w := r.LineWidth / 2
	nx, ny := -dy/l*w, dx/l*w
	r.fill(c, [2]float32{ax + nx, ay + ny}, [2]float32{bx + nx, by + ny}, [2]float32{bx - nx, by - ny}, [2]float32{ax - nx, ay - ny})
}

func (r *Raster) fill(c vector.Color, verts ...[2]float32) {
	if len(verts) < 3 || r.proj.Degenerate() {
		return
	}
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	r.ras.DrawOp = draw.Over
	r.ras.MoveTo(verts[0][0], verts[0][1])
	for _, v := range verts[1:] {
		r.ras.LineTo(v[0], v[1])
	}
	r.ras.ClosePath()
	r.ras.Draw(r.img, b, image.NewUniform(c.RGBA()), image.Point{})
}

// project maps a device point to image pixel coordinates.
func (r *Raster) project(p vector.Pt) (float32, float32) {
	if r.proj.Degenerate() {
		return 0, 0
	}
	b := r.img.Bounds()
	x := (p.X - r.proj.Left) / (r.proj.Right - r.proj.Left) * float64(b.Dx())
	y := (r.proj.Top - p.Y) / (r.proj.Top - r.proj.Bottom) * float64(b.Dy())
	return float32(x), float32(y)
}
