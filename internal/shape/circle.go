/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"math"

	"vecdraw/internal/vector"
)

// Segments is the fixed tessellation count of a circle.
const Segments = 100

// Circle is built from a center click and a radius click. It is tessellated
// in pixel space into Segments outline lines, or Segments filled wedges
// sharing the center, depending on its fill mode.
type Circle struct {
	style
	step   int
	center vector.Pt
	dev    vector.Pt
	radius float64
	ring   [Segments + 1]vector.Pt
	sides  [Segments]Line
	wedges [Segments]Triangle
}

func NewCircle(c vector.Color, filled bool) *Circle {
	s := style{color: c, filled: filled}
	ci := &Circle{style: s}
	for i := range ci.sides {
		ci.sides[i] = Line{style: style{color: c}}
		ci.wedges[i] = *NewTriangle(c, filled)
	}
	return ci
}

func (c *Circle) Kind() Kind     { return KindCircle }
func (c *Circle) Step() int      { return c.step }
func (c *Circle) Complete() bool { return c.step == 2 }

func (c *Circle) Advance(at vector.Pt) {
	switch c.step {
	case 0:
		c.center = at
		c.tessellate(0)
	case 1:
		c.radius = vector.Dist(c.center, at)
		c.tessellate(c.radius)
	default:
		return
	}
	c.step++
}

func (c *Circle) Preview(at vector.Pt) {
	if c.step == 1 {
		c.tessellate(vector.Dist(c.center, at))
	}
}

func (c *Circle) Reset() {
	c.step = 0
	c.center, c.dev = vector.Pt{}, vector.Pt{}
	c.radius = 0
	c.ring = [Segments + 1]vector.Pt{}
	for i := range c.sides {
		c.sides[i].Reset()
		c.wedges[i].Reset()
	}
}

func (c *Circle) Fit(vp vector.Viewport) {
	c.dev = vp.ToDevice(c.center)
	if c.filled {
		for i := range c.wedges {
			c.wedges[i].Fit(vp)
		}
		return
	}
	for i := range c.sides {
		c.sides[i].Fit(vp)
	}
}

func (c *Circle) Draw(r Renderer) {
	if c.step == 0 {
		return
	}
	c.begin(r)
	if c.filled {
		for i := range c.wedges {
			c.wedges[i].Draw(r)
		}
		return
	}
	for i := range c.sides {
		c.sides[i].Draw(r)
	}
}

// Center returns the pixel and device center.
func (c *Circle) Center() (raw, dev vector.Pt) { return c.center, c.dev }

// Radius is the committed pixel radius; zero until the second click.
func (c *Circle) Radius() float64 { return c.radius }

// Ring returns the Segments+1 pixel points of the current tessellation.
// The last point coincides with the first.
func (c *Circle) Ring() []vector.Pt {
	out := make([]vector.Pt, len(c.ring))
	copy(out, c.ring[:])
	return out
}

func (c *Circle) tessellate(r float64) {
	for i := range c.ring {
		a := 2 * math.Pi * float64(i%Segments) / Segments
		c.ring[i] = vector.Polar(c.center, r, a)
	}
	for i := 0; i < Segments; i++ {
		if c.filled {
			w := &c.wedges[i]
			w.Reset()
			w.Advance(c.center)
			w.Advance(c.ring[i])
			w.Advance(c.ring[i+1])
			continue
		}
		s := &c.sides[i]
		s.Reset()
		s.Advance(c.ring[i])
		s.Advance(c.ring[i+1])
	}
}
