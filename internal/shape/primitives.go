/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "vecdraw/internal/vector"

// Point completes on its first click.
type Point struct {
	style
	step int
	raw  vector.Pt
	dev  vector.Pt
}

func NewPoint(c vector.Color, filled bool) *Point {
	return &Point{style: style{color: c, filled: filled}}
}

func (p *Point) Kind() Kind     { return KindPoint }
func (p *Point) Step() int      { return p.step }
func (p *Point) Complete() bool { return p.step == 1 }

func (p *Point) Advance(at vector.Pt) {
	if p.step == 0 {
		p.raw = at
		p.step++
	}
}

// Preview is a no-op: a point is never pending.
func (p *Point) Preview(vector.Pt) {}

func (p *Point) Reset() { *p = Point{style: p.style} }

func (p *Point) Fit(vp vector.Viewport) { p.dev = vp.ToDevice(p.raw) }

func (p *Point) Draw(r Renderer) {
	p.begin(r)
	r.Points(p.color, p.dev)
}

// Position returns the pixel and device position.
func (p *Point) Position() (raw, dev vector.Pt) { return p.raw, p.dev }

// Line is a segment. The first click seeds both endpoints so an unfinished
// line renders as a single point.
type Line struct {
	style
	step int
	raw  [2]vector.Pt
	dev  [2]vector.Pt
}

func NewLine(c vector.Color, filled bool) *Line {
	return &Line{style: style{color: c, filled: filled}}
}

func (l *Line) Kind() Kind     { return KindLine }
func (l *Line) Step() int      { return l.step }
func (l *Line) Complete() bool { return l.step == 2 }

func (l *Line) Advance(at vector.Pt) {
	switch l.step {
	case 0:
		l.raw[0], l.raw[1] = at, at
	case 1:
		l.raw[1] = at
	default:
		return
	}
	l.step++
}

func (l *Line) Preview(at vector.Pt) {
	if l.step == 1 {
		l.raw[1] = at
	}
}

func (l *Line) Reset() { *l = Line{style: l.style} }

func (l *Line) Fit(vp vector.Viewport) { fit(vp, l.dev[:], l.raw[:]) }

func (l *Line) Draw(r Renderer) {
	l.begin(r)
	r.Lines(l.color, l.dev[0], l.dev[1])
}

// Endpoints returns the pixel endpoints.
func (l *Line) Endpoints() (start, end vector.Pt) { return l.raw[0], l.raw[1] }

// DeviceEndpoints returns the fitted endpoints.
func (l *Line) DeviceEndpoints() (start, end vector.Pt) { return l.dev[0], l.dev[1] }

// Triangle previews its first edge through a base line, then previews its
// third vertex directly once two vertices are committed.
type Triangle struct {
	style
	step int
	base Line
	raw  [3]vector.Pt
	dev  [3]vector.Pt
}

func NewTriangle(c vector.Color, filled bool) *Triangle {
	s := style{color: c, filled: filled}
	return &Triangle{style: s, base: Line{style: s}}
}

func (t *Triangle) Kind() Kind     { return KindTriangle }
func (t *Triangle) Step() int      { return t.step }
func (t *Triangle) Complete() bool { return t.step == 3 }

func (t *Triangle) Advance(at vector.Pt) {
	switch t.step {
	case 0:
		t.raw = [3]vector.Pt{at, at, at}
		t.base.Advance(at)
	case 1:
		t.raw[1] = at
		t.base.Advance(at)
	case 2:
		t.raw[2] = at
	default:
		return
	}
	t.step++
}

func (t *Triangle) Preview(at vector.Pt) {
	switch t.step {
	case 1:
		t.base.Preview(at)
	case 2:
		t.raw[2] = at
	}
}

func (t *Triangle) Reset() {
	t.step = 0
	t.raw = [3]vector.Pt{}
	t.dev = [3]vector.Pt{}
	t.base.Reset()
}

func (t *Triangle) Fit(vp vector.Viewport) {
	fit(vp, t.dev[:], t.raw[:])
	t.base.Fit(vp)
}

func (t *Triangle) Draw(r Renderer) {
	if t.step < 2 {
		t.base.Draw(r)
		return
	}
	t.begin(r)
	r.Triangles(t.color, t.dev[:]...)
}

// Vertices returns the pixel vertices.
func (t *Triangle) Vertices() [3]vector.Pt { return t.raw }

// DeviceVertices returns the fitted vertices.
func (t *Triangle) DeviceVertices() [3]vector.Pt { return t.dev }

// Quad previews its first two edges through helper lines and its fourth
// vertex directly once three vertices are committed.
type Quad struct {
	style
	step  int
	sides [2]Line
	raw   [4]vector.Pt
	dev   [4]vector.Pt
}

func NewQuad(c vector.Color, filled bool) *Quad {
	s := style{color: c, filled: filled}
	return &Quad{style: s, sides: [2]Line{{style: s}, {style: s}}}
}

func (q *Quad) Kind() Kind     { return KindQuad }
func (q *Quad) Step() int      { return q.step }
func (q *Quad) Complete() bool { return q.step == 4 }

func (q *Quad) Advance(at vector.Pt) {
	switch q.step {
	case 0:
		q.raw = [4]vector.Pt{at, at, at, at}
		q.sides[0].Advance(at)
	case 1:
		q.raw[1] = at
		q.sides[0].Advance(at)
		q.sides[1].Advance(at)
	case 2:
		q.raw[2] = at
		q.sides[1].Advance(at)
	case 3:
		q.raw[3] = at
	default:
		return
	}
	q.step++
}

func (q *Quad) Preview(at vector.Pt) {
	switch q.step {
	case 1:
		q.sides[0].Preview(at)
	case 2:
		q.sides[1].Preview(at)
	case 3:
		q.raw[3] = at
	}
}

func (q *Quad) Reset() {
	q.step = 0
	q.raw = [4]vector.Pt{}
	q.dev = [4]vector.Pt{}
	q.sides[0].Reset()
	q.sides[1].Reset()
}

func (q *Quad) Fit(vp vector.Viewport) {
	fit(vp, q.dev[:], q.raw[:])
	q.sides[0].Fit(vp)
	q.sides[1].Fit(vp)
}

func (q *Quad) Draw(r Renderer) {
	if q.step >= 3 {
		q.begin(r)
		r.Quads(q.color, q.dev[:]...)
		return
	}
	q.sides[0].Draw(r)
	if q.step >= 2 {
		q.sides[1].Draw(r)
	}
}

// Vertices returns the pixel vertices.
func (q *Quad) Vertices() [4]vector.Pt { return q.raw }

// DeviceVertices returns the fitted vertices.
func (q *Quad) DeviceVertices() [4]vector.Pt { return q.dev }
