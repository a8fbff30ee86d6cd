/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Basic 2D geometry shared by the shapes, the editor and the render backends.
// Pixel space grows right/down from the top-left of a canvas; device space is
// the normalized [-1, 1] square growing right/up.

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pt is a 2D point, used both for raw pixel positions and device positions.
type Pt struct{ X, Y float64 }

// P is shorthand for Pt{x, y}.
func P(x, y float64) Pt { return Pt{X: x, Y: y} }

func (p Pt) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Pt { return Pt{X: v.X, Y: v.Y} }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Pt) float64 { return r2.Norm(r2.Sub(p.vec(), q.vec())) }

// Polar returns the point at distance r from c along angle rad (pixel axes).
func Polar(c Pt, r, rad float64) Pt {
	return Pt{X: c.X + r*math.Cos(rad), Y: c.Y + r*math.Sin(rad)}
}

// Rect is an axis-aligned rectangle in canonical form (Min <= Max per axis).
type Rect struct{ Min, Max Pt }

// RectFromCorners builds the canonical rectangle spanned by two opposite
// corners given in any order.
func RectFromCorners(a, b Pt) Rect {
	box := r2.Box{Min: a.vec(), Max: b.vec()}.Canon()
	return Rect{Min: fromVec(box.Min), Max: fromVec(box.Max)}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W() <= 0 || r.H() <= 0 }

// Ortho holds orthographic projection bounds in device space.
type Ortho struct{ Left, Right, Bottom, Top float64 }

// Unit is the identity projection covering the whole device square.
var Unit = Ortho{Left: -1, Right: 1, Bottom: -1, Top: 1}

// OrthoFromCorners returns the projection bounded by two device-space corners,
// independent of their order.
func OrthoFromCorners(a, b Pt) Ortho {
	r := RectFromCorners(a, b)
	return Ortho{Left: r.Min.X, Right: r.Max.X, Bottom: r.Min.Y, Top: r.Max.Y}
}

// Degenerate reports whether the projection has a zero-sized axis.
func (o Ortho) Degenerate() bool { return o.Right == o.Left || o.Top == o.Bottom }

// Viewport is the pixel extent of a canvas plus a generation counter that
// increments whenever the extent changes. Consumers caching device-space
// geometry compare generations instead of sharing a validity flag.
type Viewport struct {
	W, H int
	Gen  uint64
}

// NewViewport returns a viewport of the given size at generation 1.
func NewViewport(w, h int) Viewport { return Viewport{W: w, H: h, Gen: 1} }

// Resize returns the viewport with a new extent. The generation only
// advances when the extent actually changes.
func (v Viewport) Resize(w, h int) Viewport {
	if w == v.W && h == v.H {
		return v
	}
	return Viewport{W: w, H: h, Gen: v.Gen + 1}
}

func (v Viewport) half() (float64, float64) { return float64(v.W) / 2, float64(v.H) / 2 }

// ToDevice maps a pixel position to normalized device coordinates.
// A zero-sized axis maps to 0.
func (v Viewport) ToDevice(p Pt) Pt {
	hw, hh := v.half()
	var out Pt
	if hw != 0 {
		out.X = (p.X - hw) / hw
	}
	if hh != 0 {
		out.Y = (hh - p.Y) / hh
	}
	return out
}

// ToPixel is the inverse of ToDevice.
func (v Viewport) ToPixel(d Pt) Pt {
	hw, hh := v.half()
	return Pt{X: d.X*hw + hw, Y: hh - d.Y*hh}
}

// Affine2D represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
type Affine2D struct{ A, B, C, D, E, F float64 }

var Identity = Affine2D{A: 1, D: 1}

func (m Affine2D) Mul(n Affine2D) Affine2D {
	return Affine2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine2D) Apply(p Pt) Pt {
	return Pt{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func Translate(tx, ty float64) Affine2D { return Affine2D{A: 1, D: 1, E: tx, F: ty} }
func Scale(sx, sy float64) Affine2D     { return Affine2D{A: sx, D: sy} }
