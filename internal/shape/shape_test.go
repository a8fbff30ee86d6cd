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
	"testing"

	"vecdraw/internal/render"
	"vecdraw/internal/vector"
)

var vp = vector.NewViewport(620, 400)

func near(a, b vector.Pt) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func draw(s Shape) *render.Recorder {
	rec := &render.Recorder{}
	s.Draw(rec)
	return rec
}

func TestPointFitNormalizes(t *testing.T) {
	cases := []struct{ px, dev vector.Pt }{
		{vector.P(310, 200), vector.P(0, 0)},
		{vector.P(0, 0), vector.P(-1, 1)},
		{vector.P(620, 400), vector.P(1, -1)},
		{vector.P(-310, 600), vector.P(-2, -2)},
	}
	for _, c := range cases {
		p := NewPoint(vector.White, true)
		p.Advance(c.px)
		p.Fit(vp)
		if _, dev := p.Position(); !near(dev, c.dev) {
			t.Fatalf("ToDevice(%v) = %v, want %v", c.px, dev, c.dev)
		}
	}
}

func TestPointCompletesOnFirstClick(t *testing.T) {
	p := NewPoint(vector.White, false)
	if p.Complete() {
		t.Fatalf("fresh point should not be complete")
	}
	p.Advance(vector.P(1, 2))
	p.Advance(vector.P(3, 4))
	p.Preview(vector.P(5, 6))
	if !p.Complete() || p.Step() != 1 {
		t.Fatalf("point step = %d", p.Step())
	}
	if raw, _ := p.Position(); raw != vector.P(1, 2) {
		t.Fatalf("point moved after completion: %v", raw)
	}
	p.Fit(vp)
	rec := draw(p)
	if rec.Count(render.OpPoints) != 1 || len(rec.Calls[0].Pts) != 1 {
		t.Fatalf("point draw calls = %+v", rec.Calls)
	}
}

func TestLinePreviewOnlyWhilePending(t *testing.T) {
	l := NewLine(vector.White, false)
	l.Preview(vector.P(9, 9))
	if a, b := l.Endpoints(); a != (vector.Pt{}) || b != (vector.Pt{}) {
		t.Fatalf("preview at step 0 changed the line")
	}
	l.Advance(vector.P(10, 10))
	if a, b := l.Endpoints(); a != b {
		t.Fatalf("first click should seed both endpoints: %v %v", a, b)
	}
	l.Preview(vector.P(40, 50))
	if _, b := l.Endpoints(); b != vector.P(40, 50) {
		t.Fatalf("preview did not move the end: %v", b)
	}
	l.Advance(vector.P(100, 50))
	if !l.Complete() {
		t.Fatalf("line should complete after two clicks")
	}
	l.Preview(vector.P(1, 1))
	l.Advance(vector.P(2, 2))
	if _, b := l.Endpoints(); b != vector.P(100, 50) {
		t.Fatalf("line changed after completion: %v", b)
	}
	l.Fit(vp)
	rec := draw(l)
	if rec.Count(render.OpLines) != 1 || len(rec.Calls[0].Pts) != 2 {
		t.Fatalf("line draw calls = %+v", rec.Calls)
	}
	if _, d := l.DeviceEndpoints(); !near(d, vp.ToDevice(vector.P(100, 50))) {
		t.Fatalf("device end = %v", d)
	}
}

func TestTriangleHandoff(t *testing.T) {
	tr := NewTriangle(vector.Red, true)
	tr.Advance(vector.P(0, 0))
	tr.Preview(vector.P(20, 0))
	tr.Fit(vp)
	rec := draw(tr)
	if rec.Count(render.OpLines) != 1 || rec.Count(render.OpTriangles) != 0 {
		t.Fatalf("step 1 should draw the base line: %+v", rec.Calls)
	}

	tr.Advance(vector.P(20, 0))
	if v := tr.Vertices(); v[1] != vector.P(20, 0) || v[2] != vector.P(0, 0) {
		t.Fatalf("second click should set only the second vertex: %v", v)
	}
	tr.Preview(vector.P(10, 30))
	if v := tr.Vertices(); v[2] != vector.P(10, 30) {
		t.Fatalf("preview at step 2 should move the third vertex: %v", v)
	}
	tr.Fit(vp)
	rec = draw(tr)
	if rec.Count(render.OpTriangles) != 1 || !rec.Calls[len(rec.Calls)-1].Filled {
		t.Fatalf("step 2 should draw a filled triangle: %+v", rec.Calls)
	}

	tr.Advance(vector.P(10, 40))
	if !tr.Complete() {
		t.Fatalf("triangle should complete after three clicks")
	}
	tr.Preview(vector.P(99, 99))
	if v := tr.Vertices(); v != [3]vector.Pt{vector.P(0, 0), vector.P(20, 0), vector.P(10, 40)} {
		t.Fatalf("vertices = %v", v)
	}
}

func TestQuadHandoff(t *testing.T) {
	q := NewQuad(vector.White, false)
	q.Advance(vector.P(0, 0))
	q.Fit(vp)
	if rec := draw(q); rec.Count(render.OpLines) != 1 {
		t.Fatalf("step 1: %+v", rec.Calls)
	}
	q.Advance(vector.P(10, 0))
	q.Preview(vector.P(10, 10))
	q.Fit(vp)
	if rec := draw(q); rec.Count(render.OpLines) != 2 || rec.Count(render.OpQuads) != 0 {
		t.Fatalf("step 2: %+v", rec.Calls)
	}
	q.Advance(vector.P(10, 10))
	q.Preview(vector.P(0, 10))
	q.Fit(vp)
	rec := draw(q)
	if rec.Count(render.OpQuads) != 1 || rec.Calls[0].Filled {
		t.Fatalf("step 3 should draw an outline quad: %+v", rec.Calls)
	}
	if v := q.Vertices(); v[3] != vector.P(0, 10) {
		t.Fatalf("preview at step 3 should move the fourth vertex: %v", v)
	}
	q.Advance(vector.P(0, 12))
	if !q.Complete() || q.Step() != 4 {
		t.Fatalf("quad should complete after four clicks")
	}
	q.Reset()
	if q.Step() != 0 || q.Vertices() != [4]vector.Pt{} {
		t.Fatalf("reset left state behind")
	}
}

func TestCircleTessellation(t *testing.T) {
	for _, filled := range []bool{true, false} {
		c := NewCircle(vector.White, filled)
		if rec := draw(c); len(rec.Calls) != 0 {
			t.Fatalf("empty circle should not draw")
		}
		c.Advance(vector.P(100, 100))
		c.Advance(vector.P(103, 104))
		c.Fit(vp)
		if c.Radius() != 5 {
			t.Fatalf("radius = %v, want 5", c.Radius())
		}
		ring := c.Ring()
		if len(ring) != Segments+1 || ring[Segments] != ring[0] {
			t.Fatalf("ring not closed: first %v last %v", ring[0], ring[len(ring)-1])
		}
		center, _ := c.Center()
		for i, p := range ring {
			if d := vector.Dist(center, p); math.Abs(d-5) > 1e-9 {
				t.Fatalf("ring[%d] at distance %v", i, d)
			}
		}
		rec := draw(c)
		if filled {
			if rec.Count(render.OpTriangles) != Segments || rec.Count(render.OpLines) != 0 {
				t.Fatalf("filled circle calls: %d triangles", rec.Count(render.OpTriangles))
			}
			w := rec.Filter(render.OpTriangles)[0]
			if !near(w.Pts[0], vp.ToDevice(center)) {
				t.Fatalf("wedge should start at the center: %v", w.Pts[0])
			}
		} else if rec.Count(render.OpLines) != Segments || rec.Count(render.OpTriangles) != 0 {
			t.Fatalf("outline circle calls: %d lines", rec.Count(render.OpLines))
		}
	}
}

func TestCirclePreviewDoesNotCommitRadius(t *testing.T) {
	c := NewCircle(vector.White, true)
	c.Advance(vector.P(0, 0))
	c.Preview(vector.P(0, 10))
	if c.Radius() != 0 {
		t.Fatalf("preview committed radius %v", c.Radius())
	}
	if r := c.Ring(); vector.Dist(r[0], vector.P(0, 0)) != 10 {
		t.Fatalf("preview ring radius = %v", vector.Dist(r[0], vector.P(0, 0)))
	}
	c.Advance(vector.P(0, 7))
	c.Preview(vector.P(0, 100))
	if c.Radius() != 7 || vector.Dist(c.Ring()[0], vector.P(0, 0)) != 7 {
		t.Fatalf("preview after completion changed the circle")
	}
}

func TestZoomRegionOrderIndependent(t *testing.T) {
	a, b := vector.P(50, 60), vector.P(10, 20)
	z1, z2 := NewZoomRegion(), NewZoomRegion()
	z1.Advance(a)
	z1.Advance(b)
	z2.Advance(b)
	z2.Advance(a)
	z1.Fit(vp)
	z2.Fit(vp)
	if z1.Frame() != z2.Frame() {
		t.Fatalf("frames differ: %v vs %v", z1.Frame(), z2.Frame())
	}
	if f := z1.Frame(); f.Min != vector.P(10, 20) || f.Max != vector.P(50, 60) {
		t.Fatalf("frame = %+v", f)
	}
}

func TestZoomRegionOutline(t *testing.T) {
	z := NewZoomRegion()
	if z.Complete() {
		t.Fatalf("fresh selection should not be complete")
	}
	z.Advance(vector.P(10, 10))
	z.Preview(vector.P(30, 40))
	z.Fit(vp)
	rec := draw(z)
	if rec.Count(render.OpQuads) != 1 {
		t.Fatalf("selection should draw as a quad: %+v", rec.Calls)
	}
	q := rec.Filter(render.OpQuads)[0]
	if q.Filled || q.Color != vector.Red {
		t.Fatalf("selection should be a red outline: %+v", q)
	}
	want := []vector.Pt{vector.P(10, 10), vector.P(30, 10), vector.P(30, 40), vector.P(10, 40)}
	for i, w := range want {
		if !near(q.Pts[i], vp.ToDevice(w)) {
			t.Fatalf("corner %d = %v, want %v", i, q.Pts[i], vp.ToDevice(w))
		}
	}
	z.Reset()
	if rec := draw(z); len(rec.Calls) != 0 {
		t.Fatalf("reset selection should not draw")
	}
}

func TestKinds(t *testing.T) {
	for k := KindPoint; k <= KindZoom; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("hexagon"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, err := New(KindZoom, vector.White, true); err == nil {
		t.Fatalf("zoom is not a drawable shape")
	}
	for k := KindPoint; k <= KindCircle; k++ {
		s, err := New(k, vector.Red, false)
		if err != nil {
			t.Fatalf("New(%s): %v", k, err)
		}
		for i := 0; i < k.Vertices(); i++ {
			if s.Complete() {
				t.Fatalf("%s complete after %d clicks", k, i)
			}
			s.Advance(vector.P(float64(i), float64(i*2)))
		}
		if !s.Complete() || s.Kind() != k || s.Color() != vector.Red || s.Filled() {
			t.Fatalf("%s after %d clicks: complete=%v", k, k.Vertices(), s.Complete())
		}
	}
}
