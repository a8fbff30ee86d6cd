/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"image/color"
	"testing"

	"vecdraw/internal/vector"
)

func TestRecorderCapturesCalls(t *testing.T) {
	rec := &Recorder{}
	rec.SetPolygonMode(true)
	pts := []vector.Pt{vector.P(0, 0), vector.P(1, 0), vector.P(0, 1)}
	rec.Triangles(vector.Red, pts...)
	pts[0] = vector.P(9, 9)
	rec.SetPolygonMode(false)
	rec.Lines(vector.White, vector.P(0, 0), vector.P(1, 1))
	rec.Points(vector.White, vector.P(0, 0))
	rec.Quads(vector.White, vector.P(0, 0), vector.P(1, 0), vector.P(1, 1), vector.P(0, 1))

	if len(rec.Calls) != 4 {
		t.Fatalf("calls = %d", len(rec.Calls))
	}
	tri := rec.Filter(OpTriangles)
	if len(tri) != 1 || !tri[0].Filled || tri[0].Color != vector.Red {
		t.Fatalf("triangle call = %+v", tri)
	}
	if tri[0].Pts[0] != vector.P(0, 0) {
		t.Fatalf("recorder must copy vertices, got %v", tri[0].Pts[0])
	}
	if rec.Filter(OpLines)[0].Filled {
		t.Fatalf("line call recorded with stale fill mode")
	}
	for _, op := range []Op{OpPoints, OpLines, OpTriangles, OpQuads} {
		if rec.Count(op) != 1 {
			t.Fatalf("Count(%s) = %d", op, rec.Count(op))
		}
	}
	rec.Reset()
	if len(rec.Calls) != 0 {
		t.Fatalf("Reset left %d calls", len(rec.Calls))
	}
}

func TestRasterFilledTriangleCoverage(t *testing.T) {
	r := NewRaster(100, 100)
	if r.Coverage() != 0 {
		t.Fatalf("fresh frame has coverage %d", r.Coverage())
	}
	r.SetPolygonMode(true)
	// Lower-left half of the device square.
	r.Triangles(vector.White, vector.P(-1, -1), vector.P(1, -1), vector.P(-1, 1))
	cov := r.Coverage()
	if cov < 4500 || cov > 5500 {
		t.Fatalf("half-frame triangle coverage = %d", cov)
	}
	if got := r.Image().RGBAAt(10, 90); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("pixel inside triangle = %v", got)
	}
	if got := r.Image().RGBAAt(90, 10); got != r.Background {
		t.Fatalf("pixel outside triangle = %v", got)
	}
}

func TestRasterOutlineIsThin(t *testing.T) {
	r := NewRaster(100, 100)
	r.SetPolygonMode(false)
	r.Quads(vector.White, vector.P(-0.5, -0.5), vector.P(0.5, -0.5), vector.P(0.5, 0.5), vector.P(-0.5, 0.5))
	cov := r.Coverage()
	if cov == 0 || cov > 1000 {
		t.Fatalf("outline coverage = %d", cov)
	}
	if got := r.Image().RGBAAt(50, 50); got != r.Background {
		t.Fatalf("outline quad filled its interior: %v", got)
	}
}

func TestRasterLinesAndPoints(t *testing.T) {
	r := NewRaster(64, 64)
	r.Lines(vector.White, vector.P(-1, 0), vector.P(1, 0))
	if r.Coverage() < 64 {
		t.Fatalf("horizontal line coverage = %d", r.Coverage())
	}
	r.Begin(64, 64, vector.Unit)
	r.Lines(vector.White, vector.P(0.2, 0.2), vector.P(0.2, 0.2))
	if r.Coverage() == 0 {
		t.Fatalf("zero-length line should render as a point")
	}
	r.Begin(64, 64, vector.Unit)
	r.PointSize = 4
	r.Points(vector.Red, vector.P(0, 0))
	if c := r.Coverage(); c < 9 || c > 25 {
		t.Fatalf("point coverage = %d", c)
	}
}

func TestRasterProjection(t *testing.T) {
	r := NewRaster(10, 10)
	// Show only the upper-right quadrant of device space.
	r.Begin(10, 10, vector.Ortho{Left: 0, Right: 1, Bottom: 0, Top: 1})
	r.SetPolygonMode(true)
	r.Quads(vector.White, vector.P(0, 0), vector.P(1, 0), vector.P(1, 1), vector.P(0, 1))
	if r.Coverage() != 100 {
		t.Fatalf("quadrant should fill the frame, coverage %d", r.Coverage())
	}
	r.Begin(10, 10, vector.Ortho{})
	r.Quads(vector.White, vector.P(-1, -1), vector.P(1, -1), vector.P(1, 1), vector.P(-1, 1))
	if r.Coverage() != 0 {
		t.Fatalf("degenerate projection should draw nothing")
	}
}

func TestRasterBeginResizes(t *testing.T) {
	r := NewRaster(4, 4)
	r.Begin(0, -3, vector.Unit)
	if b := r.Image().Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("bounds = %v", b)
	}
	r.Begin(32, 16, vector.Unit)
	if b := r.Image().Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestRasterClearsToBlack(t *testing.T) {
	r := NewRaster(8, 8)
	if r.Background != vector.Black.RGBA() {
		t.Fatalf("background = %v", r.Background)
	}
	if got := r.Image().RGBAAt(3, 3); got != vector.Black.RGBA() || r.Coverage() != 0 {
		t.Fatalf("fresh frame pixel = %v coverage = %d", got, r.Coverage())
	}
}
