/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import "vecdraw/internal/vector"

// Op identifies a primitive kind.
type Op int

const (
	OpPoints Op = iota
	OpLines
	OpTriangles
	OpQuads
)

func (o Op) String() string {
	switch o {
	case OpPoints:
		return "points"
	case OpLines:
		return "lines"
	case OpTriangles:
		return "triangles"
	case OpQuads:
		return "quads"
	}
	return "unknown"
}

// Call is one recorded primitive submission.
type Call struct {
	Op     Op
	Color  vector.Color
	Filled bool
	Pts    []vector.Pt
}

// Recorder captures primitive submissions instead of rasterizing them.
// It backs the headless replay summary and the package tests.
type Recorder struct {
	filled bool
	Calls  []Call
}

func (r *Recorder) SetPolygonMode(filled bool) { r.filled = filled }

func (r *Recorder) Points(c vector.Color, pts ...vector.Pt)    { r.add(OpPoints, c, pts) }
func (r *Recorder) Lines(c vector.Color, pts ...vector.Pt)     { r.add(OpLines, c, pts) }
func (r *Recorder) Triangles(c vector.Color, pts ...vector.Pt) { r.add(OpTriangles, c, pts) }
func (r *Recorder) Quads(c vector.Color, pts ...vector.Pt)     { r.add(OpQuads, c, pts) }

func (r *Recorder) add(op Op, c vector.Color, pts []vector.Pt) {
	r.Calls = append(r.Calls, Call{Op: op, Color: c, Filled: r.filled, Pts: append([]vector.Pt(nil), pts...)})
}

// Count returns the number of calls of the given kind.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the calls of the given kind in submission order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.filled = false
}
