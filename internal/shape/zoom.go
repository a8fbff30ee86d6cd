/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "vecdraw/internal/vector"

// ZoomRegion is the rubber-band rectangle of the zoom tool. It is spanned by
// two opposite corners and drawn as a red outline quad. It is reset and reused
// rather than reallocated, and never stored with the drawn shapes.
type ZoomRegion struct {
	style
	step int
	quad *Quad
	raw  [2]vector.Pt
}

func NewZoomRegion() *ZoomRegion {
	return &ZoomRegion{style: style{color: vector.Red}, quad: NewQuad(vector.Red, false)}
}

func (z *ZoomRegion) Kind() Kind     { return KindZoom }
func (z *ZoomRegion) Step() int      { return z.step }
func (z *ZoomRegion) Complete() bool { return z.step == 2 }

func (z *ZoomRegion) Advance(at vector.Pt) {
	switch z.step {
	case 0:
		z.raw[0], z.raw[1] = at, at
		z.quad.Reset()
		z.quad.Advance(at)
	case 1:
		z.raw[1] = at
		z.outline(at)
	default:
		return
	}
	z.step++
}

func (z *ZoomRegion) Preview(at vector.Pt) {
	if z.step == 1 {
		z.outline(at)
	}
}

func (z *ZoomRegion) Reset() {
	z.step = 0
	z.raw = [2]vector.Pt{}
	z.quad.Reset()
}

func (z *ZoomRegion) Fit(vp vector.Viewport) {
	z.quad.Fit(vp)
}

func (z *ZoomRegion) Draw(r Renderer) {
	if z.step == 0 {
		return
	}
	z.quad.Draw(r)
}

// Frame returns the canonical pixel rectangle spanned by the two corners.
func (z *ZoomRegion) Frame() vector.Rect { return vector.RectFromCorners(z.raw[0], z.raw[1]) }

// outline rebuilds the quad as the axis-aligned rectangle from the first
// corner to at, in click order start, (at.x,start.y), at, (start.x,at.y).
func (z *ZoomRegion) outline(at vector.Pt) {
	start := z.raw[0]
	z.quad.Reset()
	z.quad.Advance(start)
	z.quad.Advance(vector.P(at.X, start.Y))
	z.quad.Advance(at)
	z.quad.Preview(vector.P(start.X, at.Y))
}
